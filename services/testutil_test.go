package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/models"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory DB.
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(
		&models.Organization{},
		&models.Employee{},
		&models.AttendanceRecord{},
		&models.Superadmin{},
	))

	return database
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []sentMail
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type failingMailer struct{}

func (failingMailer) Send(to, subject, body string) error {
	return errors.New("smtp: connection refused")
}

func newTestTokens() *utils.TokenManager {
	return utils.NewTokenManager("test-secret", time.Hour)
}

func getOrg(t *testing.T, database *gorm.DB, email string) *models.Organization {
	t.Helper()
	var org models.Organization
	require.NoError(t, database.Where("email = ?", email).First(&org).Error)
	return &org
}

func signUpRequest(name, email string) *models.SignUpRequest {
	return &models.SignUpRequest{
		Name:              name,
		Email:             email,
		Password:          "s3cretPass",
		Phone:             "9876543210",
		Address:           "42 Main Street",
		ContactPersonName: "Jordan Lee",
	}
}

// registerVerified signs up and verifies an organization in one step.
func registerVerified(t *testing.T, database *gorm.DB, svc AuthService, name, email string) *models.Organization {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, signUpRequest(name, email)))
	org := getOrg(t, database, email)
	require.NotNil(t, org.OTP)
	require.NoError(t, svc.VerifyOTP(ctx, email, *org.OTP))
	return getOrg(t, database, email)
}

func requireServiceError(t *testing.T, err error, code string) *Error {
	t.Helper()
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, code, svcErr.Code)
	return svcErr
}
