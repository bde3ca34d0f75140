package mongodb

import (
	"context"
	"errors"
	"fmt"

	"patitas-eternas/internal/domain/images"
	"patitas-eternas/internal/ports/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const fallbackContentType = "application/octet-stream"

// GridFSStore guarda imágenes en el bucket "images". El content type va en metadata.
type GridFSStore struct {
	bucket *gridfs.Bucket
}

func NewGridFSStore(db *mongo.Database) (*GridFSStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(imagesBucket))
	if err != nil {
		return nil, fmt.Errorf("mongodb: gridfs bucket: %w", err)
	}
	return &GridFSStore{bucket: bucket}, nil
}

func (s *GridFSStore) Save(ctx context.Context, u images.Upload) (string, error) {
	if dl, ok := ctx.Deadline(); ok {
		_ = s.bucket.SetWriteDeadline(dl)
	}

	opts := options.GridFSUpload().SetMetadata(bson.D{
		{Key: "contentType", Value: u.ContentType},
		{Key: "uploadDate", Value: u.UploadedAt},
	})
	oid, err := s.bucket.UploadFromStream(u.Filename, u.Body, opts)
	if err != nil {
		return "", fmt.Errorf("mongodb: gridfs upload: %w", err)
	}
	return oid.Hex(), nil
}

func (s *GridFSStore) Open(ctx context.Context, id string) (images.Asset, error) {
	oid, err := parseID(id)
	if err != nil {
		return images.Asset{}, err
	}
	if dl, ok := ctx.Deadline(); ok {
		_ = s.bucket.SetReadDeadline(dl)
	}

	ds, err := s.bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return images.Asset{}, storage.ErrNotFound
		}
		return images.Asset{}, fmt.Errorf("mongodb: gridfs open: %w", err)
	}

	file := ds.GetFile()
	contentType := fallbackContentType
	if file.Metadata != nil {
		if ct, ok := file.Metadata.Lookup("contentType").StringValueOK(); ok && ct != "" {
			contentType = ct
		}
	}

	return images.Asset{
		Body:        ds,
		ContentType: contentType,
		Size:        file.Length,
		Filename:    file.Name,
	}, nil
}

func (s *GridFSStore) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.bucket.DeleteContext(ctx, oid); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("mongodb: gridfs delete: %w", err)
	}
	return nil
}
