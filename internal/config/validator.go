package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators registers client-specific validation rules.
// Must be called before validating Config.
func RegisterCustomValidators(v *validator.Validate) error {
	// duration: validates Go duration strings like "30s" or "2m".
	if err := v.RegisterValidation("duration", validateDuration); err != nil {
		return fmt.Errorf("failed to register duration validator: %w", err)
	}
	return nil
}

// validateDuration accepts any string time.ParseDuration accepts, plus the
// bare "0" used to disable the analysis cache.
func validateDuration(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "0" {
		return true
	}
	d, err := time.ParseDuration(raw)
	return err == nil && d >= 0
}

// Validate validates the Config using struct tags.
// Returns an error with actionable messages when validation fails.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := RegisterCustomValidators(v); err != nil {
		return err
	}

	if err := v.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors converts validator errors into readable messages.
func formatValidationErrors(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var msgs []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s: must be a valid URL", fe.Namespace()))
		case "duration":
			msgs = append(msgs, fmt.Sprintf("%s: must be a duration like \"30s\"", fe.Namespace()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s]", fe.Namespace(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(msgs, "; "))
}
