package service

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"linkvault/internal/domain"
)

// requiredField names the message shown when a field is left blank.
type requiredField struct {
	field   string
	message string
}

// invalid wraps a validation failure as a *domain.ValidationError.
// The first blank field listed in required picks the message; any other
// failure is reported as the validator's own "field: reason" text.
func invalid(err error, required ...requiredField) error {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		for _, rf := range required {
			if isRequiredErr(fieldErrs[rf.field]) {
				return &domain.ValidationError{Message: rf.message, Err: err}
			}
		}
	}
	return &domain.ValidationError{Message: err.Error(), Err: err}
}

func isRequiredErr(err error) bool {
	var ve validation.Error
	return errors.As(err, &ve) && ve.Code() == validation.ErrRequired.Code()
}

// nonBlank returns the trimmed value of an optional field.
// A nil or whitespace-only value reports false.
func nonBlank(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	s := strings.TrimSpace(*p)
	return s, s != ""
}
