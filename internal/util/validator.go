package util

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report field names by their json tag so error maps match the wire
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the validator tags on s and returns a field->message
// map, or nil when everything passes.
func ValidateStruct(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		return fields
	}
	fields["request"] = err.Error()
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", fe.Field())
	case "required_if":
		return fmt.Sprintf("The %s field is required", fe.Field())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("The %s field may not be greater than %s characters", fe.Field(), fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s field must match %s", fe.Field(), strings.ToLower(fe.Param()))
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("The %s field is invalid", fe.Field())
}
