package forms

import (
	"errors"
	"testing"
	"time"
)

func TestLoginForm_Valid(t *testing.T) {
	if err := Validate(LoginForm{Email: "a@b.com", Password: "pw"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoginForm_EmptyFields(t *testing.T) {
	err := Validate(LoginForm{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "Email" {
		t.Errorf("expected Email flagged first, got %q", verr.Field)
	}
	if verr.Message != "Email is required" {
		t.Errorf("unexpected message: %q", verr.Message)
	}
}

func TestLoginForm_BadEmail(t *testing.T) {
	err := Validate(LoginForm{Email: "not-an-email", Password: "pw"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Message != "Enter a valid email address" {
		t.Errorf("unexpected message: %q", verr.Message)
	}
}

func TestSignupForm_PasswordMismatch(t *testing.T) {
	err := Validate(SignupForm{
		Name:            "John Doe",
		Email:           "john@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Message != "Passwords do not match" {
		t.Errorf("unexpected message: %q", verr.Message)
	}
}

func TestSignupForm_ShortPassword(t *testing.T) {
	err := Validate(SignupForm{
		Name:            "John Doe",
		Email:           "john@x.com",
		Password:        "ab",
		ConfirmPassword: "ab",
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "Password" {
		t.Errorf("expected Password flagged, got %q", verr.Field)
	}
}

func TestSignupForm_Valid(t *testing.T) {
	err := Validate(SignupForm{
		Name:            "John Doe",
		Email:           "john@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookingForm_RequiresDoctor(t *testing.T) {
	err := Validate(BookingForm{Date: "2030-01-02", Time: "10:00 AM"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Message != "Doctor is required" {
		t.Errorf("unexpected message: %q", verr.Message)
	}
}

func TestBookingForm_PastDate(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	err := Validate(BookingForm{DoctorID: "1", Date: yesterday, Time: "10:00 AM"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Message != "Date cannot be in the past" {
		t.Errorf("unexpected message: %q", verr.Message)
	}
}

func TestBookingForm_FutureDate(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if err := Validate(BookingForm{DoctorID: "1", Date: tomorrow, Time: "10:00 AM"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookingForm_MalformedDate(t *testing.T) {
	err := Validate(BookingForm{DoctorID: "1", Date: "next tuesday", Time: "10:00 AM"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "Date" {
		t.Errorf("expected Date flagged, got %q", verr.Field)
	}
}

func TestRevisitForm_RequiresDateAndTime(t *testing.T) {
	err := Validate(RevisitForm{Date: "2030-01-02"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "Time" {
		t.Errorf("expected Time flagged, got %q", verr.Field)
	}
}

func TestMedicineForm_RequiresName(t *testing.T) {
	err := Validate(MedicineForm{Dosage: "5mg"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Message != "Medicine is required" {
		t.Errorf("unexpected message: %q", verr.Message)
	}

	if err := Validate(MedicineForm{Medicine: "Aspirin"}); err != nil {
		t.Fatalf("dosage is optional, got %v", err)
	}
}
