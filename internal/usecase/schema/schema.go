// Package schema turns raw form values into typed values or field-keyed errors.
// Nothing here touches storage.
package schema

import (
	"reflect"
	"slices"
	"strings"

	"acorn/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Violations are reported under the form field name, e.g. "customerId".
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validator exposes the shared validator instance so the HTTP layer validates with the same rules.
func Validator() *validator.Validate {
	return validate
}

// fieldMessages maps "<form field>.<validation tag>" or "<form field>" to the message shown to the user.
type fieldMessages map[string]string

// collect validates form and converts every violation into a field-keyed message.
func collect(form any, messages fieldMessages) usecase.FieldErrors {
	fields := usecase.FieldErrors{}

	err := validate.Struct(form)
	if err == nil {
		return fields
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		fields.Add("form", "Invalid input.")

		return fields
	}

	for _, violation := range violations {
		name := violation.Field()
		msg, ok := messages[name+"."+violation.Tag()]
		if !ok {
			msg = messages[name]
		}
		if msg == "" {
			msg = "Invalid value."
		}

		if !slices.Contains(fields[name], msg) {
			fields.Add(name, msg)
		}
	}

	return fields
}
