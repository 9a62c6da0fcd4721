// Package forms validates user input before any network call is made.
// Validation failures are surfaced inline next to the offending field and
// never reach the backend.
package forms

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes one rejected form field.
type ValidationError struct {
	// Field is the form field that failed validation.
	Field string
	// Message is the inline, human-readable reason.
	Message string
}

// Error returns the inline message prefixed with the field name.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LoginForm is the input for the doctor and patient login views.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignupForm is the input for the patient signup view.
type SignupForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// BookingForm is the input for booking an appointment slot.
type BookingForm struct {
	DoctorID string `validate:"required"`
	Date     string `validate:"required"`
	Time     string `validate:"required"`
}

// RevisitForm is the input for scheduling a follow-up visit.
type RevisitForm struct {
	Date string `validate:"required"`
	Time string `validate:"required"`
}

// MedicineForm is the input for adding one prescription item.
type MedicineForm struct {
	Medicine string `validate:"required"`
	Dosage   string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a form and returns the first failure as a
// *ValidationError, or nil when the form is acceptable.
func Validate(form any) error {
	if err := validate.Struct(form); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return err
		}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{Field: fe.Field(), Message: messageFor(fe)}
		}
		return err
	}

	// Cross-field rule: appointments cannot be booked in the past.
	if booking, ok := form.(BookingForm); ok {
		return validateBookingDate(booking.Date)
	}
	return nil
}

// messageFor maps a failed tag to the inline message the views display.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label(fe.Field()))
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label(fe.Field()), fe.Param())
	case "eqfield":
		return "Passwords do not match"
	default:
		return fmt.Sprintf("%s is invalid", label(fe.Field()))
	}
}

// label renders a Go field name the way the form labels it.
func label(field string) string {
	switch field {
	case "DoctorID":
		return "Doctor"
	case "ConfirmPassword":
		return "Confirm password"
	default:
		return field
	}
}

// validateBookingDate rejects dates before today. Dates are the
// YYYY-MM-DD strings the date picker produces.
func validateBookingDate(date string) error {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return &ValidationError{Field: "Date", Message: "Enter a valid date (YYYY-MM-DD)"}
	}
	today := time.Now().Truncate(24 * time.Hour)
	if parsed.Before(today) {
		return &ValidationError{Field: "Date", Message: "Date cannot be in the past"}
	}
	return nil
}
