// Package respond centraliza las respuestas JSON de los handlers.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/platform/validation"
	"patitas-eternas/internal/ports/storage"
)

type messageBody struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// JSON escribe v con el status indicado.
// Si v no se puede serializar responde 500 en lugar de un 200 vacío.
func JSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		b, _ = json.Marshal(messageBody{Message: "Error interno del servidor"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}

// Message escribe {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, messageBody{Message: msg})
}

// Validation escribe 400 con la lista de campos inválidos.
func Validation(w http.ResponseWriter, msg string, err *validation.Error) {
	body := messageBody{Message: msg}
	if err != nil {
		body.Errors = err.Fields
	}
	JSON(w, http.StatusBadRequest, body)
}

// Created escribe 201 {"id": id, "message": msg}.
func Created(w http.ResponseWriter, id, msg string) {
	JSON(w, http.StatusCreated, map[string]string{
		"id":      id,
		"message": msg,
	})
}

// ErrorMessages personaliza los textos por módulo.
type ErrorMessages struct {
	Invalid  string // 400 por validación
	NotFound string // 404
}

// Error mapea los errores comunes a todos los módulos (validación, authz, storage).
// Devuelve false si err no es ninguno de ellos; el handler decide entonces (500).
func Error(w http.ResponseWriter, err error, msgs ErrorMessages) bool {
	if ve, ok := validation.As(err); ok {
		Validation(w, orDefault(msgs.Invalid, "Datos inválidos"), ve)
		return true
	}

	switch {
	case errors.Is(err, validation.ErrMalformedJSON):
		Message(w, http.StatusBadRequest, "JSON inválido")
	case errors.Is(err, authz.ErrUnauthenticated):
		Message(w, http.StatusUnauthorized, "No autenticado")
	case errors.Is(err, authz.ErrForbidden):
		Message(w, http.StatusForbidden, "No autorizado")
	case errors.Is(err, storage.ErrMalformedID):
		Message(w, http.StatusBadRequest, "ID inválido")
	case errors.Is(err, storage.ErrNotFound):
		Message(w, http.StatusNotFound, orDefault(msgs.NotFound, "No encontrado"))
	case errors.Is(err, storage.ErrDuplicate):
		Message(w, http.StatusConflict, "El registro ya existe")
	default:
		return false
	}
	return true
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
