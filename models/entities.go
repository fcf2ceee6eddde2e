package models

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// Organization
// ===============================
// Organization is the tenant root. OTP and OTPGeneratedAt are set and
// cleared together: both nil means no pending challenge.
type Organization struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	OrgCode             string     `gorm:"type:varchar(8);not null" json:"org_code"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"type:varchar(255);not null" json:"-"`
	Phone               string     `gorm:"type:varchar(20)" json:"phone"`
	Address             string     `gorm:"type:varchar(255)" json:"address"`
	ContactPersonName   string     `gorm:"type:varchar(255)" json:"contact_person_name"`
	ContactPersonNumber string     `gorm:"type:varchar(20)" json:"contact_person_number"`
	IsVerified          bool       `gorm:"default:false" json:"is_verified"`
	OTP                 *string    `gorm:"type:varchar(6)" json:"-"`
	OTPGeneratedAt      *time.Time `json:"-"`
	Role                string     `gorm:"type:varchar(20);default:'admin'" json:"role"`
	// EmployeeSeq backs employee-id allocation; it only ever increases, so
	// sequence numbers are never reused after a delete.
	EmployeeSeq int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ===============================
// Employee
// ===============================
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_org_employee" json:"-"`
	EmployeeID string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_org_employee" json:"employee_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone"`
	Role       string    `gorm:"type:varchar(20);default:'employee'" json:"role"`
	// Single-device check-in binding. MacAPI is 1 while a device is bound.
	MacAPI     int       `gorm:"not null;default:0" json:"mac_api"`
	MacAddress *string   `gorm:"type:varchar(64)" json:"mac_address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ===============================
// AttendanceRecord
// ===============================
// One row per employee per calendar day. A non-nil CheckOut is terminal.
// The composite unique index is the real guard against double check-in;
// the service pre-check only gives the friendlier error.
type AttendanceRecord struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrgID            uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_attendance_day" json:"-"`
	EmployeeID       string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_attendance_day" json:"employee_id"`
	Date             string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_day" json:"date"`
	CheckIn          string    `gorm:"type:varchar(8);not null" json:"check_in"`
	CheckInLocation  string    `gorm:"type:varchar(255);not null" json:"check_in_location"`
	CheckOut         *string   `gorm:"type:varchar(8)" json:"check_out"`
	CheckOutLocation *string   `gorm:"type:varchar(255)" json:"check_out_location"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ===============================
// Superadmin
// ===============================
// Platform-level credential principal. Stored and migrated only; no
// endpoints are exposed for it yet.
type Superadmin struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
