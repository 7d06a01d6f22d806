// Package decode turns raw backend responses into typed results.
//
// The backend is not consistent across endpoints: booleans arrive either as
// JSON booleans or as "true"/"false" strings, messages and optional fields
// may be missing or null. The helpers in this file hold that policy in one
// place; every response decoder goes through them.
//
// Structural problems (a body that is not the expected object/array, or a
// required identifier missing or of the wrong type) are never defaulted and
// surface as *common.DecodeError.
package decode

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Default messages substituted when the backend omits one.
const (
	DefaultMessage            = "Sem mensagem"
	DefaultAuthSuccessMessage = "Autenticação bem-sucedida"
	DefaultAuthFailureMessage = "E-mail ou Senha inválidos."
	DefaultProfileMessage     = "Dados obtidos com sucesso"
)

// Bool reads a boolean that may be sent as a JSON boolean or as a string.
// Strings compare case-insensitively to "true"; anything else is false.
func Bool(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.String:
		return strings.EqualFold(r.Str, "true")
	default:
		return false
	}
}

// StringOr returns r as a string, or def when r is missing, null or not a string.
func StringOr(r gjson.Result, def string) string {
	if r.Type != gjson.String {
		return def
	}
	return r.Str
}

// OptionalString returns nil for a missing, null or non-string value.
func OptionalString(r gjson.Result) *string {
	if r.Type != gjson.String {
		return nil
	}
	s := r.Str
	return &s
}

// Flag is a bool that decodes with the Bool policy. It never fails.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	*f = Flag(Bool(gjson.ParseBytes(b)))
	return nil
}
