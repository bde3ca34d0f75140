// Package validation envuelve go-playground/validator para producir errores
// por campo (nombre JSON + mensaje legible), que es lo que la API devuelve en 400.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedJSON: el body no es JSON (o no es un objeto).
var ErrMalformedJSON = errors.New("malformed json")

// FieldError describe un campo inválido.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error agrupa todos los campos inválidos de un registro.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add registra un campo inválido. Un campo aparece una sola vez (el primer mensaje gana).
func (e *Error) Add(field, message string) {
	if e.Has(field) {
		return
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *Error) Has(field string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Merge agrega los campos de otro error de validación (si lo es).
func (e *Error) Merge(err error) {
	var other *Error
	if errors.As(err, &other) {
		for _, f := range other.Fields {
			e.Add(f.Field, f.Message)
		}
	}
}

// OrNil devuelve nil si no se registró ningún campo.
func (e *Error) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// As extrae el *Error de una cadena de errores.
func As(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Messages asocia nombre JSON del campo -> mensaje. Un mensaje por campo,
// sin importar qué regla falló.
type Messages map[string]string

const fallbackMessage = "Valor inválido"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct corre las reglas `validate:"..."` de v.
// Devuelve *Error con todos los campos que fallan, o nil.
func Struct(v any, msgs Messages) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: bug de programación (nil, no-struct)
		return fmt.Errorf("validation: %w", err)
	}

	out := &Error{}
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := msgs[field]
		if !ok {
			msg = fallbackMessage
		}
		out.Add(field, msg)
	}
	return out
}

// DecodeJSON decodifica un objeto JSON en dst.
// Errores de tipo (p.ej. "name": 5) se devuelven como *Error por campo;
// JSON roto devuelve ErrMalformedJSON.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			out := &Error{}
			out.Add(te.Field, "Tipo de dato inválido")
			return out
		}
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return nil
}

// Number acepta un número JSON o un string numérico (entrada de formularios).
// Nunca falla al decodificar: Invalid queda en true y el schema decide.
type Number struct {
	Value      float64
	Present    bool
	FromString bool
	Invalid    bool
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	n.Present = true

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			n.Invalid = true
			return nil
		}
		n.FromString = true
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || !finite(f) {
			n.Invalid = true
			return nil
		}
		n.Value = f
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || !finite(f) {
		n.Invalid = true
		return nil
	}
	n.Value = f
	return nil
}

// finite descarta "Inf", "Infinity" y "NaN", que ParseFloat acepta.
func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// ParseFinite es strconv.ParseFloat sin infinitos ni NaN (query params).
func ParseFinite(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !finite(f) {
		return 0, false
	}
	return f, true
}

// Coerce devuelve el valor si es un número o string numérico.
func (n Number) Coerce() (*float64, bool) {
	if !n.Present {
		return nil, true
	}
	if n.Invalid {
		return nil, false
	}
	v := n.Value
	return &v, true
}

// Strict devuelve el valor solo si vino como número JSON.
func (n Number) Strict() (*float64, bool) {
	if n.FromString {
		return nil, false
	}
	return n.Coerce()
}
