package domain

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Identity is the bot identity used when compiling respond patterns.
// It is loaded once at startup and immutable afterwards. A missing Name is a
// fatal configuration error, surfaced before any message is processed.
type Identity struct {
	Name  string `validate:"required"`
	Alias string
}

func (i Identity) Validate() error {
	return validate.Struct(i)
}
