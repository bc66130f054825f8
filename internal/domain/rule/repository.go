package rule

import "context"

type RuleRepository interface {
	// List returns all rules in insertion order (id ascending); the resolver
	// relies on that order as the priority tiebreak.
	List(ctx context.Context) ([]Rule, error)
	Create(ctx context.Context, r Rule) (Rule, error)
	Update(ctx context.Context, r Rule) (Rule, error)
	Delete(ctx context.Context, id int) error
}
