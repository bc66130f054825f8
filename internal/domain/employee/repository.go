package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)

	// BulkCreate inserts roster rows, skipping codes that already exist.
	// Returns the number of rows actually inserted.
	BulkCreate(ctx context.Context, emps []Employee) (int, error)
}
