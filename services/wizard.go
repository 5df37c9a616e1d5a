package services

import (
	"errors"

	"salon-booking-backend/utils"

	"github.com/google/uuid"
)

// WizardStep is the current position in the booking flow.
type WizardStep int

const (
	StepSelectService WizardStep = iota + 1
	StepSelectStaff
	StepSelectDateTime
	StepEnterDetails
	StepConfirm
)

func (s WizardStep) String() string {
	switch s {
	case StepSelectService:
		return "select_service"
	case StepSelectStaff:
		return "select_staff"
	case StepSelectDateTime:
		return "select_datetime"
	case StepEnterDetails:
		return "enter_details"
	case StepConfirm:
		return "confirm"
	}
	return "unknown"
}

var (
	ErrWizardOutOfOrder  = errors.New("wizard: action not valid for current step")
	ErrWizardAtFirstStep = errors.New("wizard: already at first step")
	ErrDateNotChosen     = errors.New("wizard: choose a date before a time")
	ErrInvalidDate       = errors.New("wizard: date must be YYYY-MM-DD")
	ErrInvalidTime       = errors.New("wizard: time must be HH:MM")
	ErrMissingDetails    = errors.New("wizard: name, phone and email are required")
)

// BookingSelection holds everything the committer needs once the wizard has
// run to completion.
type BookingSelection struct {
	ServiceID     uuid.UUID
	StaffID       uuid.UUID
	Date          string
	Time          string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         string
}

// BookingWizard is the five-step booking flow as an explicit state machine:
// service -> staff -> date/time -> details -> confirm, with a single Back
// transition. Choosing a service discards any staff/date/time picked earlier,
// and choosing staff discards date/time, so a stale incompatible selection
// can never reach the committer.
type BookingWizard struct {
	step WizardStep
	sel  BookingSelection
}

func NewBookingWizard() *BookingWizard {
	return &BookingWizard{step: StepSelectService}
}

func (w *BookingWizard) Step() WizardStep {
	return w.step
}

func (w *BookingWizard) Selection() BookingSelection {
	return w.sel
}

// ChooseService records the service and advances to staff selection.
func (w *BookingWizard) ChooseService(serviceID uuid.UUID) error {
	if w.step != StepSelectService {
		return ErrWizardOutOfOrder
	}
	w.sel.ServiceID = serviceID
	w.sel.StaffID = uuid.Nil
	w.sel.Date = ""
	w.sel.Time = ""
	w.step = StepSelectStaff
	return nil
}

// ChooseStaff records the staff member and advances to date/time selection.
func (w *BookingWizard) ChooseStaff(staffID uuid.UUID) error {
	if w.step != StepSelectStaff {
		return ErrWizardOutOfOrder
	}
	w.sel.StaffID = staffID
	w.sel.Date = ""
	w.sel.Time = ""
	w.step = StepSelectDateTime
	return nil
}

// ChooseDate records the date. The step does not advance: the caller still
// has to pick one of the day's open times.
func (w *BookingWizard) ChooseDate(date string) error {
	if w.step != StepSelectDateTime {
		return ErrWizardOutOfOrder
	}
	if !utils.ValidateDate(date) {
		return ErrInvalidDate
	}
	w.sel.Date = date
	w.sel.Time = ""
	return nil
}

// ChooseTime records the time and advances to details entry.
func (w *BookingWizard) ChooseTime(clock string) error {
	if w.step != StepSelectDateTime {
		return ErrWizardOutOfOrder
	}
	if w.sel.Date == "" {
		return ErrDateNotChosen
	}
	if !utils.ValidateClock(clock) {
		return ErrInvalidTime
	}
	w.sel.Time = clock
	w.step = StepEnterDetails
	return nil
}

// SubmitDetails records contact information and advances to confirmation.
// Name, phone and email are required; notes are optional.
func (w *BookingWizard) SubmitDetails(name, phone, email, notes string) error {
	if w.step != StepEnterDetails {
		return ErrWizardOutOfOrder
	}
	if name == "" || phone == "" || email == "" {
		return ErrMissingDetails
	}
	w.sel.CustomerName = name
	w.sel.CustomerPhone = phone
	w.sel.CustomerEmail = email
	w.sel.Notes = notes
	w.step = StepConfirm
	return nil
}

// Back moves one step towards service selection. Selections already made are
// kept; re-choosing overwrites them and clears the dependent ones.
func (w *BookingWizard) Back() error {
	if w.step == StepSelectService {
		return ErrWizardAtFirstStep
	}
	w.step--
	return nil
}

// ReadyToConfirm reports whether the flow reached the confirmation step.
func (w *BookingWizard) ReadyToConfirm() bool {
	return w.step == StepConfirm
}
