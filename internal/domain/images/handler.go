package images

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/middleware"
	"patitas-eternas/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

const (
	formField    = "file"
	cacheControl = "public, max-age=31536000, immutable"

	// margen para los headers multipart sobre MaxSize
	multipartSlack = 1 << 20
)

var errMessages = respond.ErrorMessages{
	Invalid:  "Archivo inválido",
	NotFound: "Imagen no encontrada",
}

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/images", func(ir chi.Router) {
		ir.Post("/", uploadImageHandler(svc))
		ir.Get("/{id}", getImageHandler(svc))
		ir.Delete("/{id}", deleteImageHandler(svc))
	})
}

// uploadImageHandler godoc
// @Summary Subir imagen
// @Description multipart/form-data con el campo "file". JPEG, PNG o WebP, máximo 5MB.
// @Tags images
// @Accept mpfd
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param file formData file true "Imagen"
// @Success 201 {object} Stored
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /images [post]
func uploadImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.CallerFrom(r.Context())
		if err := authz.Check(caller, authz.ActionUploadImage); err != nil {
			writeError(w, r, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, MaxSize+multipartSlack)
		part, err := filePart(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer part.Close()

		stored, err := svc.Upload(r.Context(), caller, part.FileName(), part.Header.Get("Content-Type"), part)
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.LoggerFrom(r.Context()).Info("image uploaded", map[string]any{
			"image_id": stored.ID,
			"filename": stored.Filename,
		})
		respond.JSON(w, http.StatusCreated, stored)
	}
}

// filePart recorre el multipart sin bufferizarlo hasta encontrar el campo "file".
func filePart(r *http.Request) (*multipart.Part, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fileError(msgMissingFile)
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, fileError(msgMissingFile)
		}
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				return nil, fileError(msgTooLarge)
			}
			return nil, fileError(msgMissingFile)
		}
		if part.FormName() == formField && part.FileName() != "" {
			return part, nil
		}
		part.Close()
	}
}

// getImageHandler godoc
// @Summary Descargar imagen
// @Description Público. Devuelve los bytes con el content-type original.
// @Tags images
// @Produce octet-stream
// @Param id path string true "ID de la imagen"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /images/{id} [get]
func getImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asset, err := svc.Open(r.Context(), middleware.CallerFrom(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer asset.Body.Close()

		w.Header().Set("Content-Type", asset.ContentType)
		w.Header().Set("Cache-Control", cacheControl)
		w.Header().Set("X-Content-Type-Options", "nosniff")
		if asset.Size > 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(asset.Size, 10))
		}
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, asset.Body); err != nil {
			middleware.LoggerFrom(r.Context()).Warn("image stream interrupted", map[string]any{"err": err})
		}
	}
}

// deleteImageHandler godoc
// @Summary Eliminar imagen
// @Tags images
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev: user | admin"
// @Param Authorization header string false "Bearer token en producción"
// @Param id path string true "ID de la imagen"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /images/{id} [delete]
func deleteImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), middleware.CallerFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}
		respond.Message(w, http.StatusOK, "Imagen eliminada exitosamente")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if respond.Error(w, err, errMessages) {
		return
	}
	middleware.LoggerFrom(r.Context()).Error("images: internal error", map[string]any{"err": err})
	respond.Message(w, http.StatusInternalServerError, "Error interno del servidor")
}
