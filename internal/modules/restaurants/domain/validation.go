package domain

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidDraft reports a submit attempted with required fields left blank.
var ErrInvalidDraft = errors.New("restaurant draft incomplete")

// DraftValidationError lists the form fields that failed validation.
type DraftValidationError struct {
	Missing []string
}

func (e *DraftValidationError) Error() string {
	return fmt.Sprintf("please fill in: %s", strings.Join(e.Missing, ", "))
}

func (e *DraftValidationError) Unwrap() error {
	return ErrInvalidDraft
}

var draftValidator = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateDraft checks that every required text field carries a non blank value.
func ValidateDraft(d Draft) error {
	trimmed := d
	trimmed.Name = strings.TrimSpace(d.Name)
	trimmed.Description = strings.TrimSpace(d.Description)
	trimmed.Location = strings.TrimSpace(d.Location)
	trimmed.ContactNumber = strings.TrimSpace(d.ContactNumber)
	trimmed.OpeningHours = strings.TrimSpace(d.OpeningHours)

	err := draftValidator.Struct(trimmed)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate draft: %w", err)
	}
	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	sort.Strings(missing)
	return &DraftValidationError{Missing: missing}
}
