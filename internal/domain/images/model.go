package images

import (
	"context"
	"io"
	"time"
)

// MaxSize es el tamaño máximo aceptado por archivo (5 MiB).
const MaxSize int64 = 5 << 20

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Upload es un archivo ya validado listo para guardarse.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	UploadedAt  time.Time
}

// Asset es un archivo guardado. El caller cierra Body.
type Asset struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64 // 0 si el backend no lo conoce
	Filename    string
}

// Stored es la respuesta de POST /images.
type Stored struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

// Store guarda blobs por id opaco. Independiente del resto del dominio.
type Store interface {
	Save(ctx context.Context, u Upload) (string, error)
	Open(ctx context.Context, id string) (Asset, error)
	Delete(ctx context.Context, id string) error
}
