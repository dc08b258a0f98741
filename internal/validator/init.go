package validator

import (
	"ctchen222/taskboard/internal/api/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	mustRegisterRules(validate)

	// Gin binds request bodies through its own validator instance; the custom
	// rules have to be registered there as well.
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		mustRegisterRules(engine)
	}
}

func mustRegisterRules(v *validator.Validate) {
	if err := v.RegisterValidation("taskstatus", validTaskStatus); err != nil {
		panic(err)
	}
}

// validTaskStatus accepts only the three board columns.
func validTaskStatus(fl validator.FieldLevel) bool {
	_, ok := models.ParseStatus(fl.Field().String())
	return ok
}

func GetValidator() *validator.Validate {
	return validate
}
