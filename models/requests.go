package models

type SignUpRequest struct {
	Name                string `json:"name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Password            string `json:"password" binding:"required,min=6"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	ContactPersonName   string `json:"contact_person_name" binding:"required"`
	ContactPersonNumber string `json:"contact_person_number"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type CreateEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// UpdateEmployeeRequest carries partial-field semantics: nil pointers keep
// the stored value.
type UpdateEmployeeRequest struct {
	EmployeeID string  `json:"employee_id"`
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Role       *string `json:"role"`
}

type CheckInRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Location   string `json:"location"`
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Location   string `json:"location"`
}
