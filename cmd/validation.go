package cmd

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var errInvalidInput = errors.New("invalid input")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("flag"); name != "" {
			return name
		}
		return strings.ToLower(field.Name)
	})
	return v
}

type completeRitualInput struct {
	RitualID string `flag:"ritual" validate:"required"`
	Rating   *int   `flag:"rating" validate:"omitempty,min=1,max=5"`
	Notes    string `flag:"notes" validate:"max=2000"`
}

type addReminderInput struct {
	Type      string `flag:"type" validate:"required,oneof=reality_check mood_check"`
	Frequency string `flag:"frequency" validate:"required,oneof=hourly daily custom"`
	Hours     []int  `flag:"hour" validate:"required_if=Frequency custom,dive,min=0,max=23"`
	Message   string `flag:"message" validate:"required,max=280"`
}

type listLimitInput struct {
	Limit int `flag:"limit" validate:"min=0,max=100"`
}

func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatFieldError(fieldErr))
	}

	return fmt.Errorf("%w: %s", errInvalidInput, strings.Join(messages, "; "))
}

func formatFieldError(e validator.FieldError) string {
	// slice elements report as hour[2]; the flag is --hour
	field, _, _ := strings.Cut(e.Field(), "[")

	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("--%s is required", field)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("--%s must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("--%s must be at least %s", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("--%s must be at most %s characters", field, e.Param())
		}
		return fmt.Sprintf("--%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("--%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("--%s is invalid", field)
	}
}
