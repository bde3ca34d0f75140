package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"patitas-eternas/internal/domain/images"
	"patitas-eternas/internal/ports/storage"
)

type blob struct {
	data        []byte
	contentType string
	filename    string
}

type imageStore struct {
	mu   sync.RWMutex
	byID map[string]blob
}

func NewImageStore() images.Store {
	return &imageStore{
		byID: make(map[string]blob),
	}
}

func (s *imageStore) Save(_ context.Context, u images.Upload) (string, error) {
	data, err := io.ReadAll(u.Body)
	if err != nil {
		return "", fmt.Errorf("memory: read image: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID()
	s.byID[id] = blob{data: data, contentType: u.ContentType, filename: u.Filename}
	return id, nil
}

func (s *imageStore) Open(_ context.Context, id string) (images.Asset, error) {
	id, err := parseID(id)
	if err != nil {
		return images.Asset{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return images.Asset{}, storage.ErrNotFound
	}
	return images.Asset{
		Body:        io.NopCloser(bytes.NewReader(b.data)),
		ContentType: b.contentType,
		Size:        int64(len(b.data)),
		Filename:    b.filename,
	}, nil
}

func (s *imageStore) Delete(_ context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}
