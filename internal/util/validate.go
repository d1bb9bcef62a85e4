package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FormError carries per-field validation messages keyed by json path.
type FormError struct {
	Message string
	Fields  map[string]string
}

func NewFormError(message string, fields map[string]string) *FormError {
	return &FormError{Message: message, Fields: fields}
}

func (e *FormError) Error() string {
	return fmt.Sprintf("%s: %d field(s)", e.Message, len(e.Fields))
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateStruct runs the validate tags of v and converts failures into a
// FormError keyed by json field name.
func ValidateStruct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = describe(fe)
	}
	return NewFormError("validation failed", fields)
}

// BindAndValidate parses the JSON body into v and validates it. An empty body
// leaves v untouched.
func BindAndValidate(c *fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return ValidateStruct(v)
	}
	if err := c.BodyParser(v); err != nil {
		return NewFormError("invalid request body", map[string]string{"body": err.Error()})
	}
	return ValidateStruct(v)
}

// fieldPath drops the struct name prefix, keeping nested and slice indexes.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "max":
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}
		unit := "characters"
		if k := fe.Kind(); k == reflect.Slice || k == reflect.Map {
			unit = "items"
		}
		return fmt.Sprintf("must contain %s %s %s", bound, fe.Param(), unit)
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return "must be a date formatted as YYYY-MM-DD"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
