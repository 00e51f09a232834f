package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// bindingError turns a gin binding failure into a 400 listing each invalid field.
func bindingError(err error) *apperrors.AppError {
	appErr := apperrors.BadRequest("Invalid request body", errors.Join(apperrors.ErrValidation, err))

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErr
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, describeFieldError(fe))
	}
	return appErr.WithDetails(details...)
}

func describeFieldError(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
