package pets

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
	Invalid:  "Datos de mascota inválidos",
	NotFound: "Mascota no encontrada",
}

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{id}", getPetHandler(svc))
		pr.Put("/{id}", updatePetHandler(svc))
		pr.Delete("/{id}", deletePetHandler(svc))
	})
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Listado público. Sin `status` devuelve solo las disponibles; `status=all` las devuelve todas.
// @Tags pets
// @Produce json
// @Param species query string false "dog | cat; repetible o CSV"
// @Param size query string false "small | medium | large"
// @Param minAge query number false "Edad mínima (años)"
// @Param maxAge query number false "Edad máxima (años)"
// @Param status query string false "available (default) | pending | adopted | all"
// @Success 200 {array} Pet
// @Failure 400 {object} map[string]any "filtro inválido"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := ParseListFilter(r.URL.Query())
		if err != nil {
			writeError(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Solo administradores. `age` acepta número o string numérico.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev: user | admin"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body CreateRequest true "Datos de la mascota"
// @Success 201 {object} map[string]string "id + message"
// @Failure 400 {object} map[string]any "errores por campo"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.CallerFrom(r.Context())

		var req CreateRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			// el guard va antes que el body
			if gErr := guardManage(caller); gErr != nil {
				err = gErr
			}
			writeError(w, r, err)
			return
		}

		p, err := svc.Create(r.Context(), caller, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.LoggerFrom(r.Context()).Info("pet created", map[string]any{"pet_id": p.ID})
		respond.Created(w, p.ID, "Mascota creada exitosamente")
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {object} Pet
// @Failure 400 {object} map[string]string "ID inválido"
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, p)
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Update parcial: solo se escriben los campos enviados. Solo administradores.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev: user | admin"
// @Param Authorization header string false "Bearer token en producción"
// @Param id path string true "ID de la mascota"
// @Param payload body UpdateRequest true "Campos a modificar"
// @Success 200 {object} Pet
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.CallerFrom(r.Context())

		var req UpdateRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			if gErr := guardManage(caller); gErr != nil {
				err = gErr
			}
			writeError(w, r, err)
			return
		}

		p, err := svc.Update(r.Context(), caller, chi.URLParam(r, "id"), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, p)
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev: user | admin"
// @Param Authorization header string false "Bearer token en producción"
// @Param id path string true "ID de la mascota"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.CallerFrom(r.Context())
		id := chi.URLParam(r, "id")

		if err := svc.Delete(r.Context(), caller, id); err != nil {
			writeError(w, r, err)
			return
		}

		middleware.LoggerFrom(r.Context()).Info("pet deleted", map[string]any{"pet_id": id})
		respond.Message(w, http.StatusOK, "Mascota eliminada exitosamente")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrEmptyUpdate) {
		respond.Message(w, http.StatusBadRequest, "Debes enviar al menos un campo para actualizar")
		return
	}
	if respond.Error(w, err, errMessages) {
		return
	}
	middleware.LoggerFrom(r.Context()).Error("pets: internal error", map[string]any{"err": err})
	respond.Message(w, http.StatusInternalServerError, "Error interno del servidor")
}

func guardManage(c authz.Caller) error {
	return authz.Check(c, authz.ActionManagePets)
}
