package handlers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"restaurant-pos/access"
	"restaurant-pos/settings"
)

var registerOnce sync.Once

// RegisterValidators adds the pos_role and currency tags to gin's validator
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		if err = v.RegisterValidation("pos_role", func(fl validator.FieldLevel) bool {
			_, ok := access.ParseRole(fl.Field().String())
			return ok
		}); err != nil {
			return
		}
		err = v.RegisterValidation("currency", settings.IsCurrency)
	})
	return err
}
