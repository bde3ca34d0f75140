package memory

import (
	"strings"

	"patitas-eternas/internal/ports/storage"

	"github.com/google/uuid"
)

func newID() string {
	return uuid.NewString()
}

// parseID normaliza el id; un string que no es uuid es ErrMalformedID.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", storage.ErrMalformedID
	}
	return u.String(), nil
}
