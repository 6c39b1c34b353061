package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/parenting_journal_app/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// RegisterCustomValidators installs the DTO validation tags on gin's shared validator.
// Safe to call more than once.
func RegisterCustomValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
			return
		}
		validatorsErr = dto.RegisterValidators(v)
	})
	return validatorsErr
}
