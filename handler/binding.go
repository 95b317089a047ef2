package handler

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	taskvalidator "github.com/sangam0207/SpeakDo-Task-Tracker/validation/validator"
)

// duedate validates the yyyy-mm-dd wire format at binding time. Whether
// the date is acceptable for the operation is the service's call.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("duedate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(taskvalidator.DueDateLayout, fl.Field().String())
			return err == nil
		})
	}
}
