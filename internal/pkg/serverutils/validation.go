package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct validation and converts failures into a
// ValidationError carrying a field -> message map.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewValidationError("Invalid request payload", err.Error())
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fieldErrors[field] = fmt.Sprintf("%s is required", field)
		case "oneof":
			fieldErrors[field] = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
		case "min":
			fieldErrors[field] = fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		default:
			fieldErrors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return NewValidationError("Unexpected error occurred", fieldErrors)
}
