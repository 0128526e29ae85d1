package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "required" accepts all-whitespace strings; request fields that must
	// survive trimming use "notblank" instead.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}

// FirstFailure returns the struct field name of the first violated rule, so
// handlers can answer with the message for that field only. Validation is
// declared in field order, which gives the short-circuit behavior of checking
// fields one by one.
func FirstFailure(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return ""
}
