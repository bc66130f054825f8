package rule

import "context"

type RuleService interface {
	List(ctx context.Context) ([]RuleResponse, error)
	Create(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)
	Update(ctx context.Context, id int, req CreateRuleRequest) (RuleResponse, error)
	Delete(ctx context.Context, id int) error
}
