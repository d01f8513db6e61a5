package employee

import (
	"context"
	"time"

	employeeerrors "employee-records/internal/employee/errors"
	"employee-records/internal/shared/contextutil"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const joiningDateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) error
	GetByID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, employeeID string) error
	SearchBySkill(ctx context.Context, skill string) ([]EmployeeResponse, error)
	ListByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error)
	AverageSalaryByDepartment(ctx context.Context) ([]DepartmentAvgSalary, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

// dateToDateTime pins a calendar date to midnight UTC, the store's temporal
// representation for date-only values.
func dateToDateTime(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func parseJoiningDate(value string) (time.Time, error) {
	d, err := time.Parse(joiningDateLayout, value)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidJoiningDate
	}
	return dateToDateTime(d), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("department", req.Department),
	)

	joiningDate, err := parseJoiningDate(req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee invalid joining_date",
			zap.String("joining_date", req.JoiningDate),
		)
		return err
	}

	empl := &Employee{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Department:  req.Department,
		Salary:      *req.Salary,
		JoiningDate: joiningDate,
		Skills:      *req.Skills,
	}

	// The unique index on employee_id makes the insert the duplicate check:
	// concurrent creates with the same business key cannot both succeed.
	if err := s.repo.Insert(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)
	return nil
}

func (s *service) GetByID(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", employeeID))

	empl, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		s.logger.Warn("get employee by id failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Salary != nil {
		fields["salary"] = *req.Salary
	}
	if req.JoiningDate != nil {
		joiningDate, err := parseJoiningDate(*req.JoiningDate)
		if err != nil {
			s.logger.Warn("update employee invalid joining_date",
				zap.String("joining_date", *req.JoiningDate),
			)
			return err
		}
		fields["joining_date"] = joiningDate
	}
	if req.Skills != nil {
		fields["skills"] = *req.Skills
	}

	// The store rejects an empty $set, so a zero-field update degrades to an
	// existence check and stays a no-op.
	if len(fields) == 0 {
		if _, err := s.repo.FindByEmployeeID(ctx, employeeID); err != nil {
			return mapRepositoryError(err)
		}
		return nil
	}

	matched, err := s.repo.UpdateFields(ctx, employeeID, fields)
	if err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	if matched == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)
	return nil
}

func (s *service) Delete(ctx context.Context, employeeID string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	deleted, err := s.repo.Delete(ctx, employeeID)
	if err != nil {
		s.logger.Error("delete employee failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	if deleted == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)
	return nil
}

func (s *service) SearchBySkill(ctx context.Context, skill string) ([]EmployeeResponse, error) {
	s.logger.Debug("search employees by skill requested", zap.String("skill", skill))

	employees, err := s.repo.FindBySkill(ctx, skill)
	if err != nil {
		s.logger.Error("search employees by skill failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) ListByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error) {
	s.logger.Debug("list employees by department requested", zap.String("department", department))

	employees, err := s.repo.FindByDepartment(ctx, department)
	if err != nil {
		s.logger.Error("list employees by department failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) AverageSalaryByDepartment(ctx context.Context) ([]DepartmentAvgSalary, error) {
	s.logger.Debug("average salary by department requested")

	rows, err := s.repo.AverageSalaryByDepartment(ctx)
	if err != nil {
		s.logger.Error("average salary by department failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if rows == nil {
		rows = []DepartmentAvgSalary{}
	}
	return rows, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	skills := empl.Skills
	if skills == nil {
		skills = []string{}
	}
	return EmployeeResponse{
		EmployeeID:  empl.EmployeeID,
		Name:        empl.Name,
		Department:  empl.Department,
		Salary:      empl.Salary,
		JoiningDate: empl.JoiningDate.Format(joiningDateLayout),
		Skills:      skills,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
