package storage

import "errors"

// Errores comunes que todos los adapters de storage devuelven.
// Los servicios los comparan con errors.Is, nunca por el tipo concreto del adapter.
var (
	ErrNotFound = errors.New("not found")

	// ErrMalformedID: el string no se puede convertir al identificador del store
	// (ObjectID en mongo, uuid en postgres/memory). Distinto de ErrNotFound.
	ErrMalformedID = errors.New("malformed id")

	// ErrDuplicate: violación de índice único (p.ej. users.email).
	ErrDuplicate = errors.New("duplicate key")
)
