package constants

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	LoggerKey    ContextKey = "logger"
	RequestIDKey ContextKey = "requestID"
	TxKey        ContextKey = "tx"
	ScopeKey     ContextKey = "sessionScope"
	ParamsKey    ContextKey = "params"
)

// Validate reports field errors under their wire names (json or form tag).
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	return v
}
