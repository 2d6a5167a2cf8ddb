package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
)

// Dates travel as plain YYYY-MM-DD strings, never time.Time, so day
// boundaries are immune to timezone shifts between client and server.
var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("plannerdate", func(fl validator.FieldLevel) bool {
		return dateRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("eventtype", func(fl validator.FieldLevel) bool {
		return planner.ValidEventType(fl.Field().String())
	})
	v.RegisterValidation("aicategory", func(fl validator.FieldLevel) bool {
		return planner.ValidCategory(fl.Field().String())
	})
}
