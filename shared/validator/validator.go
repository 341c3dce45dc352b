package validator

import (
	"dashboard/shared/failure"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate = newValidate()

// Violations are reported under the name the caller used: the json key, then the
// yaml key, then the Go field name.
func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "yaml"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}

			if name != "" {
				return name
			}
		}

		return field.Name
	})

	return v
}

// ValidateStruct checks the validate tags of data and reports every violation
// as a single bad request failure.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
