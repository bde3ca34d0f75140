package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/platform/validation"
	"patitas-eternas/internal/ports/storage"
)

func TestError_MapsCommonErrors(t *testing.T) {
	msgs := ErrorMessages{Invalid: "Datos de mascota inválidos", NotFound: "Mascota no encontrada"}

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"malformed json", fmt.Errorf("%w: eof", validation.ErrMalformedJSON), http.StatusBadRequest, "JSON inválido"},
		{"unauthenticated", authz.ErrUnauthenticated, http.StatusUnauthorized, "No autenticado"},
		{"forbidden", authz.ErrForbidden, http.StatusForbidden, "No autorizado"},
		{"malformed id", fmt.Errorf("get: %w", storage.ErrMalformedID), http.StatusBadRequest, "ID inválido"},
		{"not found", storage.ErrNotFound, http.StatusNotFound, "Mascota no encontrada"},
		{"duplicate", storage.ErrDuplicate, http.StatusConflict, "El registro ya existe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.True(t, Error(rec, tc.err, msgs))
			assert.Equal(t, tc.status, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestError_ValidationListsFields(t *testing.T) {
	ve := &validation.Error{}
	ve.Add("name", "El nombre es requerido")

	rec := httptest.NewRecorder()
	require.True(t, Error(rec, ve, ErrorMessages{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Message string                  `json:"message"`
		Errors  []validation.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Datos inválidos", body.Message)
	assert.Equal(t, []validation.FieldError{{Field: "name", Message: "El nombre es requerido"}}, body.Errors)
}

func TestError_UnknownLeftToCaller(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.False(t, Error(rec, errors.New("boom"), ErrorMessages{}))
	assert.Equal(t, 0, rec.Body.Len())
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "abc", "Mascota creada exitosamente")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"abc","message":"Mascota creada exitosamente"}`, rec.Body.String())
}

func TestJSON_UnencodableValueIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]float64{"age": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Error interno del servidor"}`, rec.Body.String())
}
