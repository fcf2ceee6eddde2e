package constants

import "time"

type RoleEnum string

const (
	RoleOrgAdmin   RoleEnum = "org-admin"
	RoleAdmin      RoleEnum = "admin"
	RoleEmployee   RoleEnum = "employee"
	RoleSuperadmin RoleEnum = "superadmin"
)

// OTPValidDuration is how long an issued OTP stays redeemable.
const OTPValidDuration = 10 * time.Minute

// Machine-readable error codes carried on failure responses.
const (
	CodeDuplicateEmail          = "DUPLICATE_EMAIL"
	CodeDuplicateName           = "DUPLICATE_NAME"
	CodeOrgNameTooShort         = "ORG_NAME_TOO_SHORT"
	CodeInvalidOTP              = "INVALID_OTP"
	CodeOTPExpired              = "OTP_EXPIRED"
	CodeOrgNotFound             = "ORG_NOT_FOUND"
	CodeAlreadyVerified         = "ALREADY_VERIFIED"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeMailSendFailed          = "MAIL_SEND_FAILED"
	CodeEmployeeIDRequired      = "EMPLOYEE_ID_REQUIRED"
	CodeUserNotFound            = "USER_NOT_FOUND"
	CodeCheckInLocationRequired = "CHECKIN_LOCATION_REQUIRED"
	CodeInvalidEmployeeID       = "INVALID_EMPLOYEE_ID"
	CodeAlreadyCheckedIn        = "ALREADY_CHECKED_IN"
	CodeNotCheckedIn            = "NOT_CHECKED_IN"
	CodeAlreadyCheckedOut       = "ALREADY_CHECKED_OUT"
	CodeNotFound                = "NOT_FOUND"
	CodeNoRecordFound           = "NO_RECORD_FOUND"
	CodeMacAPIAlreadyZero       = "MAC_API_ALREADY_ZERO"
	CodeServerError             = "SERVER_ERROR"
)
