// Package validation registers the custom binding rules and turns binding
// failures into field level messages.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cargo-backend/internal/model"
)

var registerOnce sync.Once

// Setup registers the custom rules on gin's validator engine. Safe to call
// more than once.
func Setup() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		err = Register(v)
	})
	return err
}

// Register adds the custom rules to v and reports field names by their json tag.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	return v.RegisterValidation("application_status", ValidateApplicationStatus)
}

// ValidateApplicationStatus accepts only the enumerated application statuses.
func ValidateApplicationStatus(fl validator.FieldLevel) bool {
	return model.ApplicationStatus(fl.Field().String()).Valid()
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// FieldErrors converts a binding error to a map of json field name to message.
// The second return value is false when err carries no field information.
func FieldErrors(err error) (map[string]string, bool) {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = message(fe)
		}
		return fields, true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		fields[field] = fmt.Sprintf("must be of type %s", typeErr.Type.String())
		return fields, true
	}

	return nil, false
}

// Describe returns a short top-level message for a binding error.
func Describe(err error) string {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return "Request body is required"
	case errors.As(err, &syntaxErr):
		return "Request body is not valid JSON"
	default:
		return "Validation failed"
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must have at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must have at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "application_status":
		statuses := make([]string, 0, len(model.ApplicationStatuses))
		for _, s := range model.ApplicationStatuses {
			statuses = append(statuses, string(s))
		}
		return fmt.Sprintf("must be one of: %s", strings.Join(statuses, ", "))
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
