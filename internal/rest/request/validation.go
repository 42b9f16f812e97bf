package request

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var mbtiTypes = map[string]struct{}{
	"ISTJ": {}, "ISFJ": {}, "INFJ": {}, "INTJ": {},
	"ISTP": {}, "ISFP": {}, "INFP": {}, "INTP": {},
	"ESTP": {}, "ESFP": {}, "ENFP": {}, "ENTP": {},
	"ESTJ": {}, "ESFJ": {}, "ENFJ": {}, "ENTJ": {},
}

// RegisterValidations installs the custom binding rules used by the
// request DTOs. Must run once before the routes are served.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("mbti", validMBTI)
}

// validMBTI accepts an empty value or one of the sixteen type codes.
func validMBTI(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, ok := mbtiTypes[strings.ToUpper(s)]
	return ok
}
