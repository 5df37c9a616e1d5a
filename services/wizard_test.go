package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardStartsAtServiceSelection(t *testing.T) {
	w := NewBookingWizard()
	assert.Equal(t, StepSelectService, w.Step())
	assert.False(t, w.ReadyToConfirm())
}

func TestWizardHappyPath(t *testing.T) {
	w := NewBookingWizard()
	serviceID := uuid.New()
	staffID := uuid.New()

	require.NoError(t, w.ChooseService(serviceID))
	assert.Equal(t, StepSelectStaff, w.Step())

	require.NoError(t, w.ChooseStaff(staffID))
	assert.Equal(t, StepSelectDateTime, w.Step())

	require.NoError(t, w.ChooseDate("2024-06-01"))
	// Picking a date alone must not advance the flow
	assert.Equal(t, StepSelectDateTime, w.Step())

	require.NoError(t, w.ChooseTime("10:00"))
	assert.Equal(t, StepEnterDetails, w.Step())

	require.NoError(t, w.SubmitDetails("Asha Rahman", "+8801712345678", "asha@example.com", "window seat"))
	assert.Equal(t, StepConfirm, w.Step())
	assert.True(t, w.ReadyToConfirm())

	sel := w.Selection()
	assert.Equal(t, serviceID, sel.ServiceID)
	assert.Equal(t, staffID, sel.StaffID)
	assert.Equal(t, "2024-06-01", sel.Date)
	assert.Equal(t, "10:00", sel.Time)
	assert.Equal(t, "window seat", sel.Notes)
}

func TestWizardRejectsOutOfOrderActions(t *testing.T) {
	w := NewBookingWizard()

	assert.ErrorIs(t, w.ChooseStaff(uuid.New()), ErrWizardOutOfOrder)
	assert.ErrorIs(t, w.ChooseDate("2024-06-01"), ErrWizardOutOfOrder)
	assert.ErrorIs(t, w.ChooseTime("10:00"), ErrWizardOutOfOrder)
	assert.ErrorIs(t, w.SubmitDetails("a", "b", "c", ""), ErrWizardOutOfOrder)

	require.NoError(t, w.ChooseService(uuid.New()))
	assert.ErrorIs(t, w.ChooseService(uuid.New()), ErrWizardOutOfOrder)
}

func TestWizardTimeRequiresDate(t *testing.T) {
	w := NewBookingWizard()
	require.NoError(t, w.ChooseService(uuid.New()))
	require.NoError(t, w.ChooseStaff(uuid.New()))

	assert.ErrorIs(t, w.ChooseTime("10:00"), ErrDateNotChosen)
}

func TestWizardValidatesDateAndTimeFormats(t *testing.T) {
	w := NewBookingWizard()
	require.NoError(t, w.ChooseService(uuid.New()))
	require.NoError(t, w.ChooseStaff(uuid.New()))

	assert.ErrorIs(t, w.ChooseDate("June 1st"), ErrInvalidDate)
	require.NoError(t, w.ChooseDate("2024-06-01"))
	assert.ErrorIs(t, w.ChooseTime("10am"), ErrInvalidTime)
}

func TestWizardDetailsRequired(t *testing.T) {
	w := NewBookingWizard()
	require.NoError(t, w.ChooseService(uuid.New()))
	require.NoError(t, w.ChooseStaff(uuid.New()))
	require.NoError(t, w.ChooseDate("2024-06-01"))
	require.NoError(t, w.ChooseTime("10:00"))

	assert.ErrorIs(t, w.SubmitDetails("", "+8801712345678", "asha@example.com", ""), ErrMissingDetails)
	assert.ErrorIs(t, w.SubmitDetails("Asha", "", "asha@example.com", ""), ErrMissingDetails)
	assert.ErrorIs(t, w.SubmitDetails("Asha", "+8801712345678", "", ""), ErrMissingDetails)

	require.NoError(t, w.SubmitDetails("Asha", "+8801712345678", "asha@example.com", ""))
}

func TestWizardReselectingServiceResetsDependents(t *testing.T) {
	w := NewBookingWizard()
	require.NoError(t, w.ChooseService(uuid.New()))
	require.NoError(t, w.ChooseStaff(uuid.New()))
	require.NoError(t, w.ChooseDate("2024-06-01"))
	require.NoError(t, w.ChooseTime("10:00"))

	// Walk back to the first step and pick a different service
	require.NoError(t, w.Back())
	require.NoError(t, w.Back())
	require.NoError(t, w.Back())
	assert.Equal(t, StepSelectService, w.Step())

	other := uuid.New()
	require.NoError(t, w.ChooseService(other))

	sel := w.Selection()
	assert.Equal(t, other, sel.ServiceID)
	assert.Equal(t, uuid.Nil, sel.StaffID)
	assert.Empty(t, sel.Date)
	assert.Empty(t, sel.Time)
}

func TestWizardReselectingStaffResetsDateTime(t *testing.T) {
	w := NewBookingWizard()
	require.NoError(t, w.ChooseService(uuid.New()))
	require.NoError(t, w.ChooseStaff(uuid.New()))
	require.NoError(t, w.ChooseDate("2024-06-01"))
	require.NoError(t, w.ChooseTime("10:00"))

	require.NoError(t, w.Back())
	require.NoError(t, w.Back())
	assert.Equal(t, StepSelectStaff, w.Step())

	require.NoError(t, w.ChooseStaff(uuid.New()))
	sel := w.Selection()
	assert.Empty(t, sel.Date)
	assert.Empty(t, sel.Time)
}

func TestWizardBackStopsAtFirstStep(t *testing.T) {
	w := NewBookingWizard()
	assert.ErrorIs(t, w.Back(), ErrWizardAtFirstStep)
}

func TestWizardStepNames(t *testing.T) {
	assert.Equal(t, "select_service", StepSelectService.String())
	assert.Equal(t, "confirm", StepConfirm.String())
	assert.Equal(t, "unknown", WizardStep(99).String())
}
