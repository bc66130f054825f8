package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Get(ctx context.Context, id int) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Import loads roster rows in bulk; rows with existing codes are skipped.
	Import(ctx context.Context, rows []CreateEmployeeRequest) (ImportEmployeesResponse, error)
}
