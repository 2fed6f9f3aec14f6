package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// InitValidator wires the shared validator and registers custom rules into
// gin's binding engine so query DTOs can use them in binding tags.
func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("rating", ValidateRatingRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("rating", ValidateRatingRule)
	}
}

// ValidateRatingRule accepts integers on the 1-5 scale used by efficiency,
// intensity, and sleep quality fields.
func ValidateRatingRule(fl validator.FieldLevel) bool {
	return ValidRating(int(fl.Field().Int()))
}

func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}
