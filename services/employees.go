package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/constants"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/models"
)

type EmployeeService interface {
	Create(ctx context.Context, orgID uuid.UUID, req *models.CreateEmployeeRequest) (*models.Employee, error)
	GetAll(ctx context.Context, orgID uuid.UUID) ([]models.Employee, error)
	GetByEmployeeID(ctx context.Context, orgID uuid.UUID, employeeID string) (*models.Employee, error)
	Update(ctx context.Context, orgID uuid.UUID, req *models.UpdateEmployeeRequest) (*models.Employee, error)
	Delete(ctx context.Context, orgID uuid.UUID, employeeID string) error
	GetOwnProfile(ctx context.Context, principalID, role string) (any, error)
}

type employeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) EmployeeService {
	return &employeeService{db: db}
}

func formatEmployeeID(code string, number int64) string {
	return fmt.Sprintf("%s-%04d", code, number) // e.g., SYS-0001
}

// Create allocates the next employee id for the organization and persists
// the employee. The sequence bump is a single atomic UPDATE inside the
// transaction, so concurrent creates for the same organization cannot
// observe the same number, and deletions never free numbers for reuse.
func (s *employeeService) Create(ctx context.Context, orgID uuid.UUID, req *models.CreateEmployeeRequest) (*models.Employee, error) {
	var employee models.Employee

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.First(&org, "id = ?", orgID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewError(http.StatusNotFound, constants.CodeOrgNotFound, "Organization not found")
			}
			return err
		}

		if err := tx.Model(&models.Organization{}).
			Where("id = ?", orgID).
			UpdateColumn("employee_seq", gorm.Expr("employee_seq + ?", 1)).Error; err != nil {
			return err
		}
		if err := tx.First(&org, "id = ?", orgID).Error; err != nil {
			return err
		}

		role := req.Role
		if role == "" {
			role = string(constants.RoleEmployee)
		}

		employee = models.Employee{
			ID:         uuid.New(),
			OrgID:      orgID,
			EmployeeID: formatEmployeeID(org.OrgCode, org.EmployeeSeq),
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			Role:       role,
		}
		return tx.Create(&employee).Error
	})
	if err != nil {
		return nil, err
	}

	return &employee, nil
}

func (s *employeeService) GetAll(ctx context.Context, orgID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	err := s.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *employeeService) GetByEmployeeID(ctx context.Context, orgID uuid.UUID, employeeID string) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND org_id = ?", employeeID, orgID).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(http.StatusNotFound, constants.CodeUserNotFound, "User not found")
		}
		return nil, err
	}
	return &employee, nil
}

// Update merges only the supplied fields; nil pointers keep stored values.
func (s *employeeService) Update(ctx context.Context, orgID uuid.UUID, req *models.UpdateEmployeeRequest) (*models.Employee, error) {
	if req.EmployeeID == "" {
		return nil, NewError(http.StatusBadRequest, constants.CodeEmployeeIDRequired,
			"employee_id is required")
	}

	employee, err := s.GetByEmployeeID(ctx, orgID, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}

	if err := s.db.WithContext(ctx).Save(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, orgID uuid.UUID, employeeID string) error {
	result := s.db.WithContext(ctx).
		Where("employee_id = ? AND org_id = ?", employeeID, orgID).
		Delete(&models.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewError(http.StatusNotFound, constants.CodeUserNotFound, "User not found")
	}
	return nil
}

// GetOwnProfile resolves the record of the authenticated principal itself:
// organization principals get their organization, employee principals their
// employee row.
func (s *employeeService) GetOwnProfile(ctx context.Context, principalID, role string) (any, error) {
	if role == string(constants.RoleOrgAdmin) {
		var org models.Organization
		if err := s.db.WithContext(ctx).First(&org, "id = ?", principalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewError(http.StatusNotFound, constants.CodeOrgNotFound, "Organization not found")
			}
			return nil, err
		}
		return &org, nil
	}

	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, "id = ?", principalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(http.StatusNotFound, constants.CodeUserNotFound, "User not found")
		}
		return nil, err
	}
	return &employee, nil
}
