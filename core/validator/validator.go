package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "yaml", "mapstructure"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// ValidateStruct runs the `validate` tags of f and folds every violation
// into a single readable error.
func ValidateStruct(f interface{}) error {
	return checkError(getValidator().Struct(f))
}

// ValidateVar validates a single value against tags, naming it key in the
// returned error.
func ValidateVar(key string, value interface{}, tags string) error {
	err := checkError(getValidator().Var(value, tags))
	if err != nil && key != "" {
		return fmt.Errorf("%s %w", key, err)
	}
	return err
}

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = newValidator()
	})
	return validate
}

func checkError(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	errStrs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "oneof":
			errStr := fmt.Sprintf("error value \"%v\"", e.Value())
			if e.Field() != "" {
				errStr += fmt.Sprintf(" for key \"%s\"", e.Field())
			}
			errStr += fmt.Sprintf(" not recognized, only support \"%s\"", e.Param())
			errStrs = append(errStrs, errStr)
		case "gte":
			errStrs = append(errStrs, strings.TrimSpace(fmt.Sprintf("%s cannot be less than %s", e.Field(), e.Param())))
		case "lte", "max":
			errStrs = append(errStrs, strings.TrimSpace(fmt.Sprintf("%s cannot be more than %s", e.Field(), e.Param())))
		case "required":
			errStrs = append(errStrs, strings.TrimSpace(fmt.Sprintf("%s is required", e.Field())))
		default:
			errStrs = append(errStrs, e.Error())
		}
	}
	return errors.New(strings.Join(errStrs, " and "))
}
