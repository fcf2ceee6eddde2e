package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/constants"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/models"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, orgID uuid.UUID, employeeID, location string) (*models.AttendanceRecord, error)
	CheckOut(ctx context.Context, orgID uuid.UUID, employeeID, location string) (*models.AttendanceRecord, error)
	GetToday(ctx context.Context, orgID uuid.UUID, employeeID string) (*models.AttendanceRecord, error)
	GetHistory(ctx context.Context, orgID uuid.UUID, employeeID string) ([]models.AttendanceRecord, error)
	GetByDate(ctx context.Context, orgID uuid.UUID, employeeID, date string) (*models.AttendanceRecord, error)
	ResetDeviceBinding(ctx context.Context, orgID uuid.UUID, employeeID string) (bool, error)
}

type attendanceService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAttendanceService(db *gorm.DB) AttendanceService {
	return &attendanceService{db: db, now: time.Now}
}

// requireEmployee resolves an employee within the caller's organization.
// Identifiers belonging to another tenant are indistinguishable from
// unknown ones.
func (s *attendanceService) requireEmployee(ctx context.Context, orgID uuid.UUID, employeeID string) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND org_id = ?", employeeID, orgID).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(http.StatusNotFound, constants.CodeInvalidEmployeeID, "Employee not found.")
		}
		return nil, err
	}
	return &employee, nil
}

func (s *attendanceService) CheckIn(ctx context.Context, orgID uuid.UUID, employeeID, location string) (*models.AttendanceRecord, error) {
	if location == "" {
		return nil, NewError(http.StatusBadRequest, constants.CodeCheckInLocationRequired,
			"Location is required for check-in.")
	}

	if _, err := s.requireEmployee(ctx, orgID, employeeID); err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format(dateLayout)

	var existing models.AttendanceRecord
	err := s.db.WithContext(ctx).
		Where("org_id = ? AND employee_id = ? AND date = ?", orgID, employeeID, today).
		First(&existing).Error
	if err == nil {
		return nil, NewError(http.StatusBadRequest, constants.CodeAlreadyCheckedIn,
			"Already checked in for today.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := models.AttendanceRecord{
		OrgID:           orgID,
		EmployeeID:      employeeID,
		Date:            today,
		CheckIn:         now.Format(clockLayout),
		CheckInLocation: location,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		// Lost the race against a concurrent check-in for the same day.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewError(http.StatusBadRequest, constants.CodeAlreadyCheckedIn,
				"Already checked in for today.")
		}
		return nil, err
	}

	return &record, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, orgID uuid.UUID, employeeID, location string) (*models.AttendanceRecord, error) {
	if _, err := s.requireEmployee(ctx, orgID, employeeID); err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format(dateLayout)

	var record models.AttendanceRecord
	err := s.db.WithContext(ctx).
		Where("org_id = ? AND employee_id = ? AND date = ?", orgID, employeeID, today).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(http.StatusBadRequest, constants.CodeNotCheckedIn,
				"User hasn't checked in today.")
		}
		return nil, err
	}

	if record.CheckOut != nil {
		return nil, NewError(http.StatusBadRequest, constants.CodeAlreadyCheckedOut,
			"Already checked out for today.")
	}

	checkOut := now.Format(clockLayout)
	record.CheckOut = &checkOut
	if location != "" {
		record.CheckOutLocation = &location
	}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (s *attendanceService) GetToday(ctx context.Context, orgID uuid.UUID, employeeID string) (*models.AttendanceRecord, error) {
	if _, err := s.requireEmployee(ctx, orgID, employeeID); err != nil {
		return nil, err
	}

	today := s.now().Format(dateLayout)

	var record models.AttendanceRecord
	err := s.db.WithContext(ctx).
		Where("org_id = ? AND employee_id = ? AND date = ?", orgID, employeeID, today).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(http.StatusNotFound, constants.CodeNotFound,
				"No attendance record found for today.")
		}
		return nil, err
	}
	return &record, nil
}

func (s *attendanceService) GetHistory(ctx context.Context, orgID uuid.UUID, employeeID string) ([]models.AttendanceRecord, error) {
	if _, err := s.requireEmployee(ctx, orgID, employeeID); err != nil {
		return nil, err
	}

	var records []models.AttendanceRecord
	err := s.db.WithContext(ctx).
		Where("org_id = ? AND employee_id = ?", orgID, employeeID).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *attendanceService) GetByDate(ctx context.Context, orgID uuid.UUID, employeeID, date string) (*models.AttendanceRecord, error) {
	if _, err := s.requireEmployee(ctx, orgID, employeeID); err != nil {
		return nil, err
	}

	var record models.AttendanceRecord
	err := s.db.WithContext(ctx).
		Where("org_id = ? AND employee_id = ? AND date = ?", orgID, employeeID, date).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(http.StatusNotFound, constants.CodeNoRecordFound,
				fmt.Sprintf("No attendance found for %s on %s", employeeID, date))
		}
		return nil, err
	}
	return &record, nil
}

// ResetDeviceBinding clears the single-device check-in lock. Returns true
// when the binding was already clear, which is a no-op, not an error.
func (s *attendanceService) ResetDeviceBinding(ctx context.Context, orgID uuid.UUID, employeeID string) (bool, error) {
	employee, err := s.requireEmployee(ctx, orgID, employeeID)
	if err != nil {
		return false, err
	}

	if employee.MacAPI != 1 {
		return true, nil
	}

	err = s.db.WithContext(ctx).Model(employee).Updates(map[string]interface{}{
		"mac_api":     0,
		"mac_address": nil,
	}).Error
	if err != nil {
		return false, err
	}
	return false, nil
}
