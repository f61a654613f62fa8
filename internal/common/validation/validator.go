package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Validate(data interface{}) []ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		errors = append(errors, ValidationError{
			Field:   err.Field(),
			Message: fmt.Sprintf("field must satisfy %s constraint", err.Tag()),
		})
	}
	return errors
}

// NonNegative clamps absent or negative quantities to zero
func NonNegative(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

// NonNegativeInt clamps absent or negative counts to zero
func NonNegativeInt(value int) int {
	if value < 0 {
		return 0
	}
	return value
}
