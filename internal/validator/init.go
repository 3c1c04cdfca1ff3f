package validator

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Usernames are path segments (/portfolio/:username), so the charset stays
// URL-safe: letters, digits, underscore, hyphen.
var usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Register installs the custom "username" rule on gin's binding engine.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	return v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})
}
