package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// SetupValidator configures the binding validator with custom tags.
// Call once at startup, before the engine serves requests.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// ymd validates a YYYY-MM-DD calendar date
	_ = v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		_, err := shared.ParseDate(fl.Field().String())
		return err == nil
	})
}
