package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

func New() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// FirstMessage converts a validation failure into the single user-facing
// message for the first failing rule. Callers supply per-field messages
// keyed "Field.tag"; anything unmapped falls back to a generic message.
func FirstMessage(err error, messages map[string]string) string {
	var vErrs validator.ValidationErrors

	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return "Dados inválidos"
	}

	fe := vErrs[0]

	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	return fmt.Sprintf("Campo %s é inválido", fe.Field())
}
