package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation marks a request that decoded but broke a field rule.
	ErrValidation = errors.New("validation failed")

	// ErrBinding marks a body or query string that could not be decoded.
	ErrBinding = errors.New("binding failed")
)

var (
	requestValidator *validator.Validate
	validatorOnce    sync.Once
)

// Validator returns the shared request validator. Field names in its errors
// are the JSON names the chat platform sends.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(wireName)

		for tag, fn := range map[string]validator.Func{
			"notempty":  notBlank,
			"printable": printable,
		} {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("dto: registering %q: %v", tag, err))
			}
		}

		requestValidator = v
	})

	return requestValidator
}

// wireName prefers the json tag, then the form tag, then the Go name.
func wireName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")

		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}

	return f.Name
}

// Validate runs the field rules of v.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	return bindWith(c, binding.JSON, v)
}

// BindQueryAndValidate decodes the query string into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	return bindWith(c, binding.Query, v)
}

func bindWith(c *gin.Context, b binding.Binding, v any) error {
	if err := c.ShouldBindWith(v, b); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// ValidationErrors maps each failing field to a message a chat user can read.
// Errors that did not come from the validator give an empty map.
func ValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return out
	}

	for _, fe := range fields {
		out[fe.Field()] = validationMessage(fe)
	}

	return out
}

// IsValidationError reports whether err carries validator field errors.
func IsValidationError(err error) bool {
	var fields validator.ValidationErrors
	return errors.As(err, &fields)
}

func validationMessage(fe validator.FieldError) string {
	p := fe.Param()

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "notempty":
		return "must not be empty"
	case "printable":
		return "must not contain control characters"
	case "min", "max":
		return boundMessage(fe.Tag(), p, fe.Kind())
	case "gte":
		return "must be greater than or equal to " + p
	case "lte":
		return "must be less than or equal to " + p
	case "gt":
		return "must be greater than " + p
	case "lt":
		return "must be less than " + p
	case "oneof":
		return "must be one of: " + p
	default:
		return "failed validation: " + fe.Tag()
	}
}

// boundMessage words min and max rules. On strings they count characters.
func boundMessage(tag, param string, kind reflect.Kind) string {
	word := "most"
	if tag == "min" {
		word = "least"
	}

	msg := "must be at " + word + " " + param
	if kind == reflect.String {
		msg += " characters"
	}

	return msg
}

// printable rejects control characters other than newline and tab.
func printable(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), func(r rune) bool {
		return unicode.IsControl(r) && r != '\n' && r != '\t'
	}) < 0
}

// notBlank rejects strings that are empty once whitespace is trimmed.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
