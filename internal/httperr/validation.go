package httperr

import (
	"errors"
	"sort"
	"strings"
)

// ValidationError agrupa los mensajes de validación por campo. Un
// avance de paso bloqueado o un envío rechazado devuelven todos los
// campos fallidos, no solo el primero.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

func ErrValidation(fields map[string]string) error {
	return ValidationError{Fields: fields}
}

func AsValidation(err error) (map[string]string, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
