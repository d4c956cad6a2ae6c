package services

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator that reports fields by their JSON names,
// so logged failures read like the request body.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRequest runs the struct's validate tags and folds any failure into a
// validation error carrying message.
func checkRequest(v *validator.Validate, req interface{}, message string) error {
	if err := v.Struct(req); err != nil {
		return validationError(message, err)
	}
	return nil
}
