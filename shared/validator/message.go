package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const messageSeparator = "; "

var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be at least {param}",
	"lte":      "{field} must be at most {param}",
	"oneof":    "{field} must be one of [{param}]",
	"datetime": "{field} must be a date in the {param} layout",
	"unique":   "{field} must not contain duplicates",
}

func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		parts = append(parts, describe(valErr))
	}

	return strings.Join(parts, messageSeparator)
}

func describe(valErr val.FieldError) string {
	field := valErr.Field()
	if field == "" {
		field = "value"
	}

	template, ok := messages[valErr.Tag()]
	if !ok {
		return field + " failed " + valErr.Tag()
	}

	return strings.NewReplacer("{field}", field, "{param}", valErr.Param()).Replace(template)
}
