package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/rule"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ruleRepositoryImpl struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) rule.RuleRepository {
	return &ruleRepositoryImpl{db: db}
}

func scanRule(row pgx.Row) (rule.Rule, error) {
	var r rule.Rule
	var scopeRaw string
	err := row.Scan(
		&r.ID, &r.Name, &r.Priority, &scopeRaw,
		&r.StartDate, &r.EndDate, &r.RuleType, &r.Params,
	)
	if err != nil {
		return rule.Rule{}, err
	}

	scope, ok := rule.ParseScope(scopeRaw)
	if !ok {
		return rule.Rule{}, fmt.Errorf("rule %d: %w: %q", r.ID, rule.ErrInvalidScope, scopeRaw)
	}
	r.Scope = scope
	return r, nil
}

// List implements rule.RuleRepository.
func (rr *ruleRepositoryImpl) List(ctx context.Context) ([]rule.Rule, error) {
	q := GetQuerier(ctx, rr.db)

	// id ascending: the shift resolver uses insertion order as the
	// priority tiebreak.
	query := `
		SELECT id, name, priority, scope, start_date, end_date, rule_type, params
		FROM rules
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []rule.Rule
	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

// Create implements rule.RuleRepository.
func (rr *ruleRepositoryImpl) Create(ctx context.Context, r rule.Rule) (rule.Rule, error) {
	q := GetQuerier(ctx, rr.db)

	query := `
		INSERT INTO rules (name, priority, scope, start_date, end_date, rule_type, params)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, priority, scope, start_date, end_date, rule_type, params
	`

	created, err := scanRule(q.QueryRow(ctx, query,
		r.Name, r.Priority, r.Scope.String(), r.StartDate, r.EndDate, r.RuleType, r.Params,
	))
	if err != nil {
		return rule.Rule{}, fmt.Errorf("create rule: %w", err)
	}
	return created, nil
}

// Update implements rule.RuleRepository.
func (rr *ruleRepositoryImpl) Update(ctx context.Context, r rule.Rule) (rule.Rule, error) {
	q := GetQuerier(ctx, rr.db)

	query := `
		UPDATE rules
		SET name = $1, priority = $2, scope = $3, start_date = $4,
			end_date = $5, rule_type = $6, params = $7
		WHERE id = $8
		RETURNING id, name, priority, scope, start_date, end_date, rule_type, params
	`

	updated, err := scanRule(q.QueryRow(ctx, query,
		r.Name, r.Priority, r.Scope.String(), r.StartDate, r.EndDate, r.RuleType, r.Params, r.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rule.Rule{}, rule.ErrRuleNotFound
		}
		return rule.Rule{}, fmt.Errorf("update rule %d: %w", r.ID, err)
	}
	return updated, nil
}

// Delete implements rule.RuleRepository.
func (rr *ruleRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, rr.db)

	tag, err := q.Exec(ctx, `DELETE FROM rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rule %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return rule.ErrRuleNotFound
	}
	return nil
}
