package validation

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// Validator checks struct input against its `validate` tags.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	strict := bluemonday.StrictPolicy()
	// nomarkup rejects values the strict HTML policy would alter.
	_ = v.RegisterValidation("nomarkup", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return html.UnescapeString(strict.Sanitize(s)) == s
	})

	// maxbytes bounds the UTF-8 byte length, which is what bcrypt limits.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	return &Validator{v: v}
}

// Struct validates s and returns a human-readable message for the first
// failures, or nil.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "nomarkup":
		return fmt.Sprintf("%s must not contain markup", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldName maps Go field names to the JSON names clients send.
func fieldName(field string) string {
	fieldNames := map[string]string{
		"Nombre":           "nombre",
		"Email":            "email",
		"Password":         "password",
		"UserType":         "userType",
		"MedioPago":        "medioPago",
		"FotoDniFrente":    "fotoDniFrente",
		"FotoDniDorso":     "fotoDniDorso",
		"NumeroTramiteDni": "numeroTramiteDni",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
