package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: repo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	emps, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByCode(ctx, req.Code); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("check employee code: %w", err)
	}

	emp := employee.Employee{
		Code:       req.Code,
		Name:       req.Name,
		Sector:     req.Sector,
		Department: req.Department,
		JobTitle:   req.JobTitle,
		Branch:     req.Branch,
		HireDate:   req.HireDate,
		ShiftStart: req.ShiftStart,
	}
	if emp.ShiftStart == "" {
		emp.ShiftStart = employee.DefaultShiftStart
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("create employee: %w", err)
	}
	return mapEmployeeToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Code is deliberately not updatable; punches and records reference it.
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Sector != nil {
		emp.Sector = req.Sector
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.JobTitle != nil {
		emp.JobTitle = req.JobTitle
	}
	if req.Branch != nil {
		emp.Branch = req.Branch
	}
	if req.HireDate != nil {
		emp.HireDate = req.HireDate
	}
	if req.ShiftStart != nil {
		emp.ShiftStart = *req.ShiftStart
	}

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("update employee: %w", err)
	}
	return mapEmployeeToResponse(updated), nil
}

// Import implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Import(ctx context.Context, rows []employee.CreateEmployeeRequest) (employee.ImportEmployeesResponse, error) {
	batchID := uuid.NewString()

	var valid []employee.Employee
	skipped := 0
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			skipped++
			continue
		}
		emp := employee.Employee{
			Code:       row.Code,
			Name:       row.Name,
			Sector:     row.Sector,
			Department: row.Department,
			JobTitle:   row.JobTitle,
			Branch:     row.Branch,
			HireDate:   row.HireDate,
			ShiftStart: row.ShiftStart,
		}
		if emp.ShiftStart == "" {
			emp.ShiftStart = employee.DefaultShiftStart
		}
		valid = append(valid, emp)
	}

	inserted, err := s.EmployeeRepository.BulkCreate(ctx, valid)
	if err != nil {
		return employee.ImportEmployeesResponse{}, fmt.Errorf("import employees: %w", err)
	}
	skipped += len(valid) - inserted

	slog.Info("employee import completed",
		"batch_id", batchID,
		"imported", inserted,
		"skipped", skipped,
	)
	return employee.ImportEmployeesResponse{
		BatchID:  batchID,
		Imported: inserted,
		Skipped:  skipped,
	}, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Code:       emp.Code,
		Name:       emp.Name,
		Sector:     emp.Sector,
		Department: emp.Department,
		JobTitle:   emp.JobTitle,
		Branch:     emp.Branch,
		HireDate:   emp.HireDate,
		ShiftStart: emp.ShiftStart,
	}
}
