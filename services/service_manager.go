package services

import (
	"gorm.io/gorm"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/utils"
)

type ServiceManager struct {
	AuthService       AuthService
	EmployeeService   EmployeeService
	AttendanceService AttendanceService
}

func NewServiceManager(db *gorm.DB, mailer utils.Mailer, tokens *utils.TokenManager) *ServiceManager {
	return &ServiceManager{
		AuthService:       NewAuthService(db, mailer, tokens),
		EmployeeService:   NewEmployeeService(db),
		AttendanceService: NewAttendanceService(db),
	}
}
