package dtos

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"nsdrink-pos/ledger"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the DTOs.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("discount", func(fl validator.FieldLevel) bool {
			return ledger.ValidateDiscount(int(fl.Field().Int())) == nil
		})
	})
}
