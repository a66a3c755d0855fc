package utils

import (
	"lavanderia-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("time_of_day", validateTimeOfDay)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexPhoneNumberDigitsInternational)
	return re.MatchString(phoneNumber)
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	return reTimeHHMM.MatchString(fl.Field().String())
}
