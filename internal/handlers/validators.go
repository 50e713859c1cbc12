package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	bindingOnce sync.Once
	bindingErr  error
)

// configureBinding sets gin's process-wide binding options exactly once:
// JSON bodies with unknown fields are rejected, and the custom rules used in
// dto binding tags are added to gin's validator.
func configureBinding() error {
	bindingOnce.Do(func() {
		// Clients may not supply ids, times or balances.
		binding.EnableDecoderDisallowUnknownFields = true

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		bindingErr = v.RegisterValidation("notblank", validators.NotBlank)
	})
	return bindingErr
}
