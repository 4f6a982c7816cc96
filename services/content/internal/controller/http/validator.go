package http

import (
	"errors"

	"folio-cms/services/content/internal/entity"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "slug" binding tag to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return entity.ValidSlug(fl.Field().String())
	})
}
