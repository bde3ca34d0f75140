package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/platform/validation"
	"patitas-eternas/internal/ports/storage"
)

var (
	ErrNotFound    = storage.ErrNotFound
	ErrMalformedID = storage.ErrMalformedID
)

const (
	msgMissingFile = "No se proporcionó ningún archivo"
	msgBadType     = "Tipo de archivo no permitido. Solo se permiten JPEG, PNG y WebP"
	msgTooLarge    = "El archivo es demasiado grande. Máximo 5MB"
)

var whitespace = regexp.MustCompile(`\s+`)

// Observer recibe las subidas exitosas (métricas). Puede ser nil.
type Observer interface {
	ImageUploaded()
}

type Service struct {
	store Store
	obs   Observer
	now   func() time.Time
}

func NewService(store Store, obs Observer) *Service {
	return &Service{
		store: store,
		obs:   obs,
		now:   time.Now,
	}
}

// Upload valida tipo y tamaño sobre los bytes reales y guarda el archivo.
// declaredType es el Content-Type de la parte multipart (puede venir vacío).
func (s *Service) Upload(ctx context.Context, caller authz.Caller, name, declaredType string, r io.Reader) (Stored, error) {
	if err := authz.Check(caller, authz.ActionUploadImage); err != nil {
		return Stored{}, err
	}
	if r == nil {
		return Stored{}, fileError(msgMissingFile)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return Stored{}, fileError(msgTooLarge)
		}
		return Stored{}, fmt.Errorf("images: read upload: %w", err)
	}
	if len(data) == 0 {
		return Stored{}, fileError(msgMissingFile)
	}

	contentType := resolveType(declaredType, data)
	if !allowedTypes[contentType] {
		return Stored{}, fileError(msgBadType)
	}
	if int64(len(data)) > MaxSize {
		return Stored{}, fileError(msgTooLarge)
	}

	now := s.now()
	u := Upload{
		Filename:    StoredFilename(name, now),
		ContentType: contentType,
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
		UploadedAt:  now,
	}
	id, err := s.store.Save(ctx, u)
	if err != nil {
		return Stored{}, fmt.Errorf("images: save: %w", err)
	}

	if s.obs != nil {
		s.obs.ImageUploaded()
	}
	return Stored{ID: id, Filename: u.Filename}, nil
}

// Open es público. El caller cierra Asset.Body.
func (s *Service) Open(ctx context.Context, caller authz.Caller, id string) (Asset, error) {
	if err := authz.Check(caller, authz.ActionReadImage); err != nil {
		return Asset{}, err
	}
	return s.store.Open(ctx, id)
}

// Delete: solo admin.
func (s *Service) Delete(ctx context.Context, caller authz.Caller, id string) error {
	if err := authz.Check(caller, authz.ActionDeleteImage); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// StoredFilename arma "<unix-millis>-<nombre sin espacios>".
func StoredFilename(name string, at time.Time) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "image"
	}
	return strconv.FormatInt(at.UnixMilli(), 10) + "-" + whitespace.ReplaceAllString(name, "-")
}

// resolveType detecta el tipo de los bytes. Si el cliente declaró uno concreto
// y no coincide con lo detectado, devuelve "".
func resolveType(declared string, data []byte) string {
	sniffed, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil {
		return ""
	}
	mt, _, err := mime.ParseMediaType(declared)
	if err != nil || mt == "application/octet-stream" {
		return sniffed
	}
	mt = strings.ToLower(mt)
	if mt == "image/jpg" {
		mt = "image/jpeg"
	}
	if mt != sniffed {
		return ""
	}
	return sniffed
}

func fileError(msg string) error {
	verr := &validation.Error{}
	verr.Add("file", msg)
	return verr
}
