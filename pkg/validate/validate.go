// Package validate decodes request bodies strictly and checks them against
// their `validate` struct tags.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	ErrInvalidBody   = errors.New("invalid request body")
	ErrTrailingData  = errors.New("request body must contain a single JSON object")
	usernamePattern  = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	defaultValidator = New()
)

// New returns a validator that reports fields by their json names and knows the
// tg_username and notblank rules.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("tg_username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// DecodeJSON reads exactly one JSON object into dst and rejects unknown fields.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// Struct checks s against its tags and describes the first failing field.
func Struct(s any) error {
	err := defaultValidator.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return errors.New(describe(fieldErrors[0]))
	}
	return err
}

// Decode is DecodeJSON followed by Struct.
func Decode(r io.Reader, dst any) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}
	return Struct(dst)
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s is too long (max %s characters)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "tg_username":
		return field + " contains invalid characters"
	case "notblank":
		return field + " cannot be empty"
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}
