package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/constants"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/models"
)

type attendanceFixture struct {
	db       *gorm.DB
	svc      *attendanceService
	orgID    uuid.UUID
	otherOrg uuid.UUID
	employee *models.Employee
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()
	database := newTestDB(t)
	auth := NewAuthService(database, &fakeMailer{}, newTestTokens())
	employees := NewEmployeeService(database)
	ctx := context.Background()

	org := registerVerified(t, database, auth, "Systaldyn", "ops@systaldyn.io")
	other := registerVerified(t, database, auth, "Acme Corp", "ops@acme.io")

	employee, err := employees.Create(ctx, org.ID, createEmployeeRequest("Ada", "ada@systaldyn.io"))
	require.NoError(t, err)

	return &attendanceFixture{
		db:       database,
		svc:      NewAttendanceService(database).(*attendanceService),
		orgID:    org.ID,
		otherOrg: other.ID,
		employee: employee,
	}
}

func (f *attendanceFixture) setClock(at time.Time) {
	f.svc.now = func() time.Time { return at }
}

func TestCheckInLocationRequired(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.CheckIn(context.Background(), f.orgID, f.employee.EmployeeID, "")
	requireServiceError(t, err, constants.CodeCheckInLocationRequired)
}

func TestCheckInInvalidEmployee(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, f.orgID, "SYS-9999", "Office")
	requireServiceError(t, err, constants.CodeInvalidEmployeeID)

	// A valid identifier under a different tenant is just as unknown.
	_, err = f.svc.CheckIn(ctx, f.otherOrg, f.employee.EmployeeID, "Office")
	requireServiceError(t, err, constants.CodeInvalidEmployeeID)
}

func TestCheckInSuccess(t *testing.T) {
	f := newAttendanceFixture(t)
	f.setClock(time.Date(2024, 3, 11, 9, 15, 30, 0, time.Local))

	record, err := f.svc.CheckIn(context.Background(), f.orgID, f.employee.EmployeeID, "HQ Lobby")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-11", record.Date)
	assert.Equal(t, "09:15:30", record.CheckIn)
	assert.Equal(t, "HQ Lobby", record.CheckInLocation)
	assert.Nil(t, record.CheckOut)
	assert.Nil(t, record.CheckOutLocation)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	f.setClock(time.Date(2024, 3, 11, 9, 0, 0, 0, time.Local))

	_, err := f.svc.CheckIn(ctx, f.orgID, f.employee.EmployeeID, "HQ Lobby")
	require.NoError(t, err)

	f.setClock(time.Date(2024, 3, 11, 11, 30, 0, 0, time.Local))
	_, err = f.svc.CheckIn(ctx, f.orgID, f.employee.EmployeeID, "Somewhere else")
	requireServiceError(t, err, constants.CodeAlreadyCheckedIn)

	// The original record is untouched.
	var stored models.AttendanceRecord
	require.NoError(t, f.db.Where("employee_id = ? AND date = ?", f.employee.EmployeeID, "2024-03-11").First(&stored).Error)
	assert.Equal(t, "09:00:00", stored.CheckIn)
	assert.Equal(t, "HQ Lobby", stored.CheckInLocation)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.CheckOut(context.Background(), f.orgID, f.employee.EmployeeID, "")
	requireServiceError(t, err, constants.CodeNotCheckedIn)
}

func TestCheckOutSuccessAndTerminal(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	f.setClock(time.Date(2024, 3, 11, 9, 0, 0, 0, time.Local))

	_, err := f.svc.CheckIn(ctx, f.orgID, f.employee.EmployeeID, "HQ Lobby")
	require.NoError(t, err)

	f.setClock(time.Date(2024, 3, 11, 17, 45, 0, 0, time.Local))
	record, err := f.svc.CheckOut(ctx, f.orgID, f.employee.EmployeeID, "HQ Lobby")
	require.NoError(t, err)
	require.NotNil(t, record.CheckOut)
	assert.Equal(t, "17:45:00", *record.CheckOut)
	require.NotNil(t, record.CheckOutLocation)
	assert.Equal(t, "HQ Lobby", *record.CheckOutLocation)

	f.setClock(time.Date(2024, 3, 11, 18, 0, 0, 0, time.Local))
	_, err = f.svc.CheckOut(ctx, f.orgID, f.employee.EmployeeID, "Back door")
	requireServiceError(t, err, constants.CodeAlreadyCheckedOut)

	var stored models.AttendanceRecord
	require.NoError(t, f.db.Where("employee_id = ? AND date = ?", f.employee.EmployeeID, "2024-03-11").First(&stored).Error)
	assert.Equal(t, "17:45:00", *stored.CheckOut, "first check-out stays")
}

func TestCheckOutLocationOptional(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	f.setClock(time.Date(2024, 3, 11, 9, 0, 0, 0, time.Local))

	_, err := f.svc.CheckIn(ctx, f.orgID, f.employee.EmployeeID, "HQ Lobby")
	require.NoError(t, err)

	record, err := f.svc.CheckOut(ctx, f.orgID, f.employee.EmployeeID, "")
	require.NoError(t, err)
	assert.NotNil(t, record.CheckOut)
	assert.Nil(t, record.CheckOutLocation)
}

// The calendar day is the attendance key: yesterday's open record does not
// satisfy today's check-out.
func TestDayRollover(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	f.setClock(time.Date(2024, 3, 11, 22, 0, 0, 0, time.Local))

	_, err := f.svc.CheckIn(ctx, f.orgID, f.employee.EmployeeID, "HQ Lobby")
	require.NoError(t, err)

	f.setClock(time.Date(2024, 3, 12, 6, 0, 0, 0, time.Local))
	_, err = f.svc.CheckOut(ctx, f.orgID, f.employee.EmployeeID, "")
	requireServiceError(t, err, constants.CodeNotCheckedIn)

	// And a fresh check-in for the new day is allowed.
	_, err = f.svc.CheckIn(ctx, f.orgID, f.employee.EmployeeID, "HQ Lobby")
	require.NoError(t, err)
}

func TestGetToday(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	f.setClock(time.Date(2024, 3, 11, 9, 0, 0, 0, time.Local))

	_, err := f.svc.GetToday(ctx, f.orgID, f.employee.EmployeeID)
	requireServiceError(t, err, constants.CodeNotFound)

	_, err = f.svc.CheckIn(ctx, f.orgID, f.employee.EmployeeID, "HQ Lobby")
	require.NoError(t, err)

	record, err := f.svc.GetToday(ctx, f.orgID, f.employee.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", record.Date)

	_, err = f.svc.GetToday(ctx, f.otherOrg, f.employee.EmployeeID)
	requireServiceError(t, err, constants.CodeInvalidEmployeeID)
}

func TestGetHistoryOrdering(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	for _, day := range []int{10, 12, 11} {
		f.setClock(time.Date(2024, 3, day, 9, 0, 0, 0, time.Local))
		_, err := f.svc.CheckIn(ctx, f.orgID, f.employee.EmployeeID, "HQ Lobby")
		require.NoError(t, err)
	}

	records, err := f.svc.GetHistory(ctx, f.orgID, f.employee.EmployeeID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-03-12", records[0].Date)
	assert.Equal(t, "2024-03-11", records[1].Date)
	assert.Equal(t, "2024-03-10", records[2].Date)

	_, err = f.svc.GetHistory(ctx, f.otherOrg, f.employee.EmployeeID)
	requireServiceError(t, err, constants.CodeInvalidEmployeeID)
}

func TestGetByDate(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	f.setClock(time.Date(2024, 3, 11, 9, 0, 0, 0, time.Local))

	_, err := f.svc.CheckIn(ctx, f.orgID, f.employee.EmployeeID, "HQ Lobby")
	require.NoError(t, err)

	record, err := f.svc.GetByDate(ctx, f.orgID, f.employee.EmployeeID, "2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", record.CheckIn)

	_, err = f.svc.GetByDate(ctx, f.orgID, f.employee.EmployeeID, "2024-03-12")
	requireServiceError(t, err, constants.CodeNoRecordFound)
}

func TestResetDeviceBinding(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	// Binding already clear: explicit no-op, not an error.
	alreadyZero, err := f.svc.ResetDeviceBinding(ctx, f.orgID, f.employee.EmployeeID)
	require.NoError(t, err)
	assert.True(t, alreadyZero)

	mac := "AA:BB:CC:DD:EE:FF"
	require.NoError(t, f.db.Model(&models.Employee{}).
		Where("id = ?", f.employee.ID).
		Updates(map[string]interface{}{"mac_api": 1, "mac_address": mac}).Error)

	alreadyZero, err = f.svc.ResetDeviceBinding(ctx, f.orgID, f.employee.EmployeeID)
	require.NoError(t, err)
	assert.False(t, alreadyZero)

	var stored models.Employee
	require.NoError(t, f.db.First(&stored, "id = ?", f.employee.ID).Error)
	assert.Equal(t, 0, stored.MacAPI)
	assert.Nil(t, stored.MacAddress)

	_, err = f.svc.ResetDeviceBinding(ctx, f.otherOrg, f.employee.EmployeeID)
	requireServiceError(t, err, constants.CodeInvalidEmployeeID)
}
