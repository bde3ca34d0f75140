package users

import (
	"errors"
	"net/http"

	"patitas-eternas/internal/middleware"
	"patitas-eternas/internal/platform/respond"
	"patitas-eternas/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

var errMessages = respond.ErrorMessages{
	Invalid:  "Datos de usuario inválidos",
	NotFound: "Usuario no encontrado",
}

func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(h http.Handler) http.Handler { return h }
	}
	r.With(limit).Post("/auth/register", registerHandler(svc))
}

// registerHandler godoc
// @Summary Registrar cuenta
// @Description Crea una cuenta con rol user. La sesión la emite el proveedor de identidad.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body RegisterRequest true "Nombre, email y contraseña"
// @Success 201 {object} map[string]string "id + message"
// @Failure 400 {object} map[string]any "errores por campo"
// @Failure 409 {object} map[string]string "email ya registrado"
// @Failure 429 {object} map[string]string
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			writeError(w, r, err)
			return
		}

		u, err := svc.Register(r.Context(), middleware.CallerFrom(r.Context()), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.LoggerFrom(r.Context()).Info("user registered", map[string]any{"user_id": u.ID})
		respond.Created(w, u.ID, "Usuario registrado exitosamente")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrEmailTaken) {
		respond.Message(w, http.StatusConflict, "El correo electrónico ya está registrado")
		return
	}
	if respond.Error(w, err, errMessages) {
		return
	}
	middleware.LoggerFrom(r.Context()).Error("users: internal error", map[string]any{"err": err})
	respond.Message(w, http.StatusInternalServerError, "Error interno del servidor")
}
