package rule

import (
	"context"
	"fmt"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/rule"
)

type RuleServiceImpl struct {
	rule.RuleRepository
}

func NewRuleService(repo rule.RuleRepository) rule.RuleService {
	return &RuleServiceImpl{RuleRepository: repo}
}

// List implements rule.RuleService.
func (s *RuleServiceImpl) List(ctx context.Context) ([]rule.RuleResponse, error) {
	rules, err := s.RuleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}

	responses := make([]rule.RuleResponse, 0, len(rules))
	for _, r := range rules {
		responses = append(responses, mapRuleToResponse(r))
	}
	return responses, nil
}

// Create implements rule.RuleService.
func (s *RuleServiceImpl) Create(ctx context.Context, req rule.CreateRuleRequest) (rule.RuleResponse, error) {
	r, err := ruleFromRequest(req)
	if err != nil {
		return rule.RuleResponse{}, err
	}

	created, err := s.RuleRepository.Create(ctx, r)
	if err != nil {
		return rule.RuleResponse{}, fmt.Errorf("create rule: %w", err)
	}
	return mapRuleToResponse(created), nil
}

// Update implements rule.RuleService.
func (s *RuleServiceImpl) Update(ctx context.Context, id int, req rule.CreateRuleRequest) (rule.RuleResponse, error) {
	r, err := ruleFromRequest(req)
	if err != nil {
		return rule.RuleResponse{}, err
	}
	r.ID = id

	updated, err := s.RuleRepository.Update(ctx, r)
	if err != nil {
		return rule.RuleResponse{}, fmt.Errorf("update rule: %w", err)
	}
	return mapRuleToResponse(updated), nil
}

// Delete implements rule.RuleService.
func (s *RuleServiceImpl) Delete(ctx context.Context, id int) error {
	return s.RuleRepository.Delete(ctx, id)
}

func ruleFromRequest(req rule.CreateRuleRequest) (rule.Rule, error) {
	if err := req.Validate(); err != nil {
		return rule.Rule{}, err
	}

	scope, ok := rule.ParseScope(req.Scope)
	if !ok {
		return rule.Rule{}, rule.ErrInvalidScope
	}

	return rule.Rule{
		Name:      req.Name,
		Priority:  req.Priority,
		Scope:     scope,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		RuleType:  req.RuleType,
		Params:    req.Params,
	}, nil
}

func mapRuleToResponse(r rule.Rule) rule.RuleResponse {
	return rule.RuleResponse{
		ID:        r.ID,
		Name:      r.Name,
		Priority:  r.Priority,
		Scope:     r.Scope.String(),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		RuleType:  r.RuleType,
		Params:    r.Params,
	}
}
