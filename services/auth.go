package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/constants"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/models"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/utils"
)

type AuthService interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) error
	VerifyOTP(ctx context.Context, email, otp string) error
	SignIn(ctx context.Context, email, password string) (string, *models.Organization, error)
	ResendOTP(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

type authService struct {
	db     *gorm.DB
	mailer utils.Mailer
	tokens *utils.TokenManager
}

func NewAuthService(db *gorm.DB, mailer utils.Mailer, tokens *utils.TokenManager) AuthService {
	return &authService{db: db, mailer: mailer, tokens: tokens}
}

// orgCode derives the fixed employee-id namespace from the organization
// name. Names shorter than 3 characters are rejected at sign-up, so the
// slice below is always in range.
func orgCode(name string) string {
	return strings.ToUpper(string([]rune(name)[:3]))
}

func (s *authService) issueOTP(org *models.Organization) error {
	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	now := time.Now()
	org.OTP = &otp
	org.OTPGeneratedAt = &now
	return nil
}

func (s *authService) SignUp(ctx context.Context, req *models.SignUpRequest) error {
	if len([]rune(req.Name)) < 3 {
		return NewError(http.StatusBadRequest, constants.CodeOrgNameTooShort,
			"Organization name must be at least 3 characters")
	}

	var existing models.Organization
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return NewError(http.StatusBadRequest, constants.CodeDuplicateEmail, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := s.db.WithContext(ctx).Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return NewError(http.StatusBadRequest, constants.CodeDuplicateName, "Organization name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	org := models.Organization{
		ID:                  uuid.New(),
		Name:                req.Name,
		OrgCode:             orgCode(req.Name),
		Email:               req.Email,
		Password:            hashed,
		Phone:               req.Phone,
		Address:             req.Address,
		ContactPersonName:   req.ContactPersonName,
		ContactPersonNumber: req.ContactPersonNumber,
		Role:                string(constants.RoleAdmin),
	}
	if err := s.issueOTP(&org); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(&org).Error; err != nil {
		// The pre-checks race with concurrent sign-ups; the unique indexes
		// are authoritative.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return NewError(http.StatusBadRequest, constants.CodeDuplicateEmail, "Email already exists")
		}
		return err
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour OTP for verifying your organization is: %s\n\nThank you.",
		org.Name, *org.OTP,
	)
	if err := s.mailer.Send(org.Email, "OTP Verification - HR Management System", body); err != nil {
		return NewError(http.StatusInternalServerError, constants.CodeMailSendFailed,
			"Failed to send verification email.")
	}

	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, otp string) error {
	var org models.Organization
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&org).Error
	// Unknown email and wrong OTP are deliberately the same answer.
	if err != nil || org.OTP == nil || *org.OTP != otp {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return NewError(http.StatusBadRequest, constants.CodeInvalidOTP, "Invalid OTP")
	}

	if time.Since(*org.OTPGeneratedAt) > constants.OTPValidDuration {
		return NewError(http.StatusBadRequest, constants.CodeOTPExpired,
			"OTP expired. Please request a new one.")
	}

	org.IsVerified = true
	org.OTP = nil
	org.OTPGeneratedAt = nil
	return s.db.WithContext(ctx).Save(&org).Error
}

func (s *authService) SignIn(ctx context.Context, email, password string) (string, *models.Organization, error) {
	var org models.Organization
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&org).Error
	if err != nil || !org.IsVerified {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, err
		}
		return "", nil, NewError(http.StatusUnauthorized, constants.CodeUnauthorized,
			"Not authorized or not verified")
	}

	if !utils.CheckPassword(org.Password, password) {
		return "", nil, NewError(http.StatusUnauthorized, constants.CodeUnauthorized, "Wrong password")
	}

	token, err := s.tokens.Generate(org.ID.String(), string(constants.RoleOrgAdmin))
	if err != nil {
		return "", nil, err
	}

	return token, &org, nil
}

func (s *authService) ResendOTP(ctx context.Context, email string) error {
	var org models.Organization
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewError(http.StatusNotFound, constants.CodeOrgNotFound, "Organization not found")
		}
		return err
	}

	if org.IsVerified {
		return NewError(http.StatusBadRequest, constants.CodeAlreadyVerified,
			"Organization already verified")
	}

	if err := s.issueOTP(&org); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Save(&org).Error; err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour new OTP for verifying your organization is: %s\n\nThank you.",
		org.Name, *org.OTP,
	)
	if err := s.mailer.Send(org.Email, "Resent OTP - HR Management System", body); err != nil {
		return NewError(http.StatusInternalServerError, constants.CodeMailSendFailed,
			"Failed to resend OTP.")
	}

	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	var org models.Organization
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewError(http.StatusNotFound, constants.CodeOrgNotFound, "Organization not found")
		}
		return err
	}

	// Usable regardless of verification state: a new OTP always replaces
	// any pending challenge.
	if err := s.issueOTP(&org); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Save(&org).Error; err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour OTP for resetting your password is: %s\n\nIf you didn't request this, please ignore.",
		org.Name, *org.OTP,
	)
	if err := s.mailer.Send(org.Email, "Reset Password - HR Management System", body); err != nil {
		return NewError(http.StatusInternalServerError, constants.CodeMailSendFailed,
			"Failed to send reset OTP.")
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	var org models.Organization
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&org).Error
	if err != nil || org.OTP == nil || *org.OTP != otp {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return NewError(http.StatusBadRequest, constants.CodeInvalidOTP, "Invalid OTP or email.")
	}

	if time.Since(*org.OTPGeneratedAt) > constants.OTPValidDuration {
		return NewError(http.StatusBadRequest, constants.CodeOTPExpired,
			"OTP expired. Please request a new one.")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	org.Password = hashed
	org.OTP = nil
	org.OTPGeneratedAt = nil
	return s.db.WithContext(ctx).Save(&org).Error
}
