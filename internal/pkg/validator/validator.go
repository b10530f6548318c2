package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"hotelbooking/internal/domain"
)

var validate *validator.Validate

var phoneRe = regexp.MustCompile(domain.PhonePattern)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("guest_phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
