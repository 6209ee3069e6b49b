package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseAndValidate decodes the JSON body into payload and runs the struct
// tags. It writes the error response itself and returns false on failure.
func parseAndValidate(c *fiber.Ctx, payload interface{}) (bool, error) {
	if err := c.BodyParser(payload); err != nil {
		return false, apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fields := validatePayload(payload); len(fields) > 0 {
		return false, validationError(c, fields)
	}
	return true, nil
}

func validatePayload(payload interface{}) []fieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []fieldError{{Field: "body", Message: "is invalid"}}
	}

	fields := make([]fieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldError{
			Field:   toSnakeCase(fieldErr.Field()),
			Message: validationMessage(fieldErr),
		})
	}
	return fields
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
