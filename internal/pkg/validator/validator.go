package validator

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/neighborhood-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры запроса. Нарушения превращаются в
// AppError со статусом 400 и пофилдовыми деталями.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	details := make(map[string]interface{}, len(violations))
	for _, v := range violations {
		details[strings.ToLower(v.Field())] = describeViolation(v)
	}

	return errors.New("INVALID_REQUEST", "Invalid request parameters", http.StatusBadRequest).
		WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

func describeViolation(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(v.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("must be at least %s", v.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", v.Param())
	default:
		return fmt.Sprintf("failed validation rule %q", v.Tag())
	}
}
