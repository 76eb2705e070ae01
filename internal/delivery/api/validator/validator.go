// Package validator adapts go-playground/validator to echo and adds the
// portal's identity formats as tags.
package validator

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var (
	cnicPattern    = regexp.MustCompile(`^(\d{13}|\d{5}-\d{7}-\d)$`)
	regNoPattern   = regexp.MustCompile(`^\d{4}-[A-Za-z]{2}-\d{2,4}$`)
	phonePattern   = regexp.MustCompile(`^(\+92|0)3\d{2}-?\d{7}$`)
	sessionPattern = regexp.MustCompile(`^(\d{4})-(\d{4})$`)
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports JSON field names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = validate.RegisterValidation("cnic", matches(cnicPattern))
	_ = validate.RegisterValidation("regno", matches(regNoPattern))
	_ = validate.RegisterValidation("phone_pk", matches(phonePattern))
	_ = validate.RegisterValidation("session", validSession)
	_ = validate.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return entity.Department(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: validate}
}

// Validate checks i and converts failures into a ValidationFailed error
// listing the offending fields.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.NewValidationFailed(err.Error())
	}

	fields := make([]string, 0, len(validationErrs))
	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
		messages = append(messages, describe(fe))
	}

	return domainerrors.NewValidationFailed(strings.Join(messages, "; "), fields...)
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "cnic":
		return field + " must be 13 digits or XXXXX-XXXXXXX-X"
	case "regno":
		return field + " must look like 2024-CS-123"
	case "phone_pk":
		return field + " must be a Pakistani mobile number"
	case "session":
		return field + " must look like 2024-2028"
	case "department":
		return field + " is not a known department"
	case "oneof":
		return field + " must be one of " + fe.Param()
	default:
		return field + " is invalid"
	}
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// validSession accepts YYYY-YYYY where the end year follows the start year.
func validSession(fl validator.FieldLevel) bool {
	m := sessionPattern.FindStringSubmatch(fl.Field().String())
	if m == nil {
		return false
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])

	return end > start && end-start <= 7
}
