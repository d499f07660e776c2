package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/timeguard/pkg/i18n"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Translate returns a copy with every message rendered by tr in lang.
// Errors without a translation key keep their message.
func (ve ValidationErrors) Translate(tr *i18n.Translator, lang string) ValidationErrors {
	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		if err.TranslationKey != "" && tr != nil {
			err.Message = tr.Tp(lang, err.TranslationKey, err.TranslationValues)
		}
		out[i] = err
	}
	return out
}

// Rule represents a single validation rule. Err carries a configuration
// error found while building the rule; such rules never run.
type Rule struct {
	Check func() bool
	Error ValidationError
	Err   error
}

// Apply executes the rules and returns any validation errors. Configuration
// errors of any rule are returned first, joined, and no check runs.
func Apply(rules ...Rule) error {
	var configErrs []error
	for _, rule := range rules {
		if rule.Err != nil {
			configErrs = append(configErrs, rule.Err)
		}
	}
	if len(configErrs) > 0 {
		return errors.Join(configErrs...)
	}

	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Check != nil && !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
