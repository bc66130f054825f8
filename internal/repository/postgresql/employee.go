package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/employee"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, code, name, sector, department, job_title, branch, hire_date, shift_start`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Code, &emp.Name, &emp.Sector, &emp.Department,
		&emp.JobTitle, &emp.Branch, &emp.HireDate, &emp.ShiftStart,
	)
	return emp, err
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee %d: %w", id, err)
	}
	return emp, nil
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE code = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee %s: %w", code, err)
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (code, name, sector, department, job_title, branch, hire_date, shift_start)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns + `
	`

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.Code, emp.Name, emp.Sector, emp.Department,
		emp.JobTitle, emp.Branch, emp.HireDate, emp.ShiftStart,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, sector = $2, department = $3, job_title = $4,
			branch = $5, hire_date = $6, shift_start = $7
		WHERE id = $8
		RETURNING ` + employeeColumns + `
	`

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.Name, emp.Sector, emp.Department, emp.JobTitle,
		emp.Branch, emp.HireDate, emp.ShiftStart, emp.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("update employee %d: %w", emp.ID, err)
	}
	return updated, nil
}

// BulkCreate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) BulkCreate(ctx context.Context, emps []employee.Employee) (int, error) {
	if len(emps) == 0 {
		return 0, nil
	}

	inserted := 0
	err := WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO employees (code, name, sector, department, job_title, branch, hire_date, shift_start)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (code) DO NOTHING
		`
		for _, emp := range emps {
			tag, err := tx.Exec(ctx, query,
				emp.Code, emp.Name, emp.Sector, emp.Department,
				emp.JobTitle, emp.Branch, emp.HireDate, emp.ShiftStart,
			)
			if err != nil {
				return fmt.Errorf("insert employee %s: %w", emp.Code, err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
