package applications

import (
	"errors"
	"net/http"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/middleware"
	"patitas-eternas/internal/platform/respond"
	"patitas-eternas/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

var errMessages = respond.ErrorMessages{
	Invalid:  "Datos de solicitud inválidos",
	NotFound: "Solicitud no encontrada",
}

// RegisterRoutes: limit se aplica solo al POST público (puede ser nil).
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(h http.Handler) http.Handler { return h }
	}

	r.Route("/adoption-applications", func(ar chi.Router) {
		ar.Get("/", listApplicationsHandler(svc))
		ar.With(limit).Post("/", submitApplicationHandler(svc))

		ar.Get("/{id}", getApplicationHandler(svc))
		ar.Patch("/{id}", updateStatusHandler(svc))
	})
}

// submitApplicationHandler godoc
// @Summary Enviar solicitud de adopción
// @Description Abierto a cualquiera. Si hay sesión, la solicitud queda asociada al usuario. La mascota debe existir.
// @Tags adoption-applications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body SubmitRequest true "Datos de la solicitud"
// @Success 201 {object} map[string]string "id + message"
// @Failure 400 {object} map[string]any "errores por campo"
// @Failure 429 {object} map[string]string
// @Router /adoption-applications [post]
func submitApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			writeError(w, r, err)
			return
		}

		a, err := svc.Submit(r.Context(), middleware.CallerFrom(r.Context()), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.LoggerFrom(r.Context()).Info("application submitted", map[string]any{
			"application_id": a.ID,
			"pet_id":         a.PetID,
		})
		respond.Created(w, a.ID, "Solicitud enviada exitosamente")
	}
}

// listApplicationsHandler godoc
// @Summary Listar solicitudes
// @Description Admin ve todas; un usuario solo las propias.
// @Tags adoption-applications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev: user | admin"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} Application
// @Failure 401 {object} map[string]string
// @Router /adoption-applications [get]
func listApplicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), middleware.CallerFrom(r.Context()))
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// getApplicationHandler godoc
// @Summary Obtener solicitud
// @Description Solo el dueño de la solicitud o un admin.
// @Tags adoption-applications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev: user | admin"
// @Param Authorization header string false "Bearer token en producción"
// @Param id path string true "ID de la solicitud"
// @Success 200 {object} Application
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /adoption-applications/{id} [get]
func getApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), middleware.CallerFrom(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, a)
	}
}

// updateStatusHandler godoc
// @Summary Cambiar estado de una solicitud
// @Description Solo admin. Aprobar una solicitud marca la mascota como adoptada.
// @Tags adoption-applications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev: user | admin"
// @Param Authorization header string false "Bearer token en producción"
// @Param id path string true "ID de la solicitud"
// @Param payload body StatusRequest true "pending | approved | rejected"
// @Success 200 {object} Application
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string "la mascota no pudo marcarse como adoptada"
// @Router /adoption-applications/{id} [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.CallerFrom(r.Context())

		var req StatusRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			if gErr := authz.Check(caller, authz.ActionUpdateApplication); gErr != nil {
				err = gErr
			}
			writeError(w, r, err)
			return
		}

		a, err := svc.UpdateStatus(r.Context(), caller, chi.URLParam(r, "id"), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.LoggerFrom(r.Context()).Info("application status changed", map[string]any{
			"application_id": a.ID,
			"status":         a.Status,
		})
		respond.JSON(w, http.StatusOK, a)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrTransitionFailed) {
		respond.Message(w, http.StatusInternalServerError, "No se pudo marcar la mascota como adoptada")
		return
	}
	if respond.Error(w, err, errMessages) {
		return
	}
	middleware.LoggerFrom(r.Context()).Error("applications: internal error", map[string]any{"err": err})
	respond.Message(w, http.StatusInternalServerError, "Error interno del servidor")
}
