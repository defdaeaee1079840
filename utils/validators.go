package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("categorycolor", ValidateColorRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("categorycolor", ValidateColorRule)
	}
}

func ValidateColorRule(fl validator.FieldLevel) bool {
	return ValidateHexColor(fl.Field().String())
}

// ValidateHexColor accepts #RGB and #RRGGBB color strings.
func ValidateHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}
