package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator names fields by their koanf keys, so a failure reads as the
// YAML key or APP_ variable an operator has to fix.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if key := f.Tag.Get("koanf"); key != "" {
			return key
		}

		return snakeCase(f.Name)
	})

	// The built-in "timezone" tag rejects "Local".
	if err := v.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "" {
			return false
		}

		_, err := time.LoadLocation(name)

		return err == nil
	}); err != nil {
		panic(err)
	}

	v.RegisterStructValidation(validateStoreDriver, StoreConfig{})

	return v
}

// validateStoreDriver requires the settings of the selected backend only.
func validateStoreDriver(sl validator.StructLevel) {
	store, ok := sl.Current().Interface().(StoreConfig)
	if !ok {
		return
	}

	var key, value string

	switch store.Driver {
	case DriverSQLite:
		key, value = "sqlite.path", store.SQLite.Path
	case DriverPostgres:
		key, value = "postgres.dsn", store.Postgres.DSN
	case DriverRedis:
		key, value = "redis.addr", store.Redis.Addr
	default:
		return
	}

	if value == "" {
		sl.ReportError(value, key, key, "required_for_driver", store.Driver)
	}
}

// Validate checks every rule and reports all failures at once. The bot
// refuses to start on an invalid config.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return fmt.Errorf("config validation: %w", err)
	}

	lines := make([]string, len(fields))
	for i, fe := range fields {
		lines[i] = describe(fe)
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func describe(fe validator.FieldError) string {
	key := formatFieldPath(fe.Namespace())
	p := fe.Param()

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if", "required_with":
		return key + " is required when " + condition(p)
	case "required_for_driver":
		return key + " is required when store.driver is " + p
	case "min":
		return key + " must be at least " + p
	case "max":
		return key + " must be at most " + p
	case "gtefield":
		return key + " must be at least " + snakeCase(p)
	case "oneof":
		return key + " must be one of: " + p
	case "url":
		return key + " must be a valid URL"
	case "location":
		return key + " must be a known time zone"
	default:
		return key + " failed validation: " + fe.Tag()
	}
}

// condition words a required_if or required_with param, "Enabled true"
// becoming "enabled is true".
func condition(param string) string {
	field, value, ok := strings.Cut(param, " ")
	if !ok {
		return snakeCase(field) + " is set"
	}

	return snakeCase(field) + " is " + value
}

// formatFieldPath drops the root type from a validator namespace, turning
// "Config.server.read_timeout" into "server.read_timeout".
func formatFieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

// snakeCase turns a Go field name such as MaxFailures into max_failures.
func snakeCase(name string) string {
	var b strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
