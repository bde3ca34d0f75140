package s3store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"patitas-eternas/internal/domain/images"
	"patitas-eternas/internal/ports/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

const filenameMeta = "filename"

// API es el subconjunto del cliente S3 que usa el store.
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Options struct {
	Bucket   string
	Prefix   string // p.ej. "images/"
	Region   string
	Endpoint string // localstack/minio; activa path-style
}

// Store guarda cada imagen como objeto <prefix><uuid>.
type Store struct {
	api    API
	bucket string
	prefix string
}

// New carga la config por default de AWS (env, perfil, rol) y arma el cliente.
func New(ctx context.Context, opts Options) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("s3store: aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewWithAPI(client, opts.Bucket, opts.Prefix), nil
}

func NewWithAPI(api API, bucket, prefix string) *Store {
	return &Store{api: api, bucket: bucket, prefix: prefix}
}

func (s *Store) Save(ctx context.Context, u images.Upload) (string, error) {
	id := uuid.NewString()
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(id)),
		Body:        u.Body,
		ContentType: aws.String(u.ContentType),
		Metadata:    map[string]string{filenameMeta: u.Filename},
	}
	if u.Size > 0 {
		in.ContentLength = aws.Int64(u.Size)
	}

	if _, err := s.api.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("s3store: put %s: %w", id, err)
	}
	return id, nil
}

func (s *Store) Open(ctx context.Context, id string) (images.Asset, error) {
	id, err := parseID(id)
	if err != nil {
		return images.Asset{}, err
	}

	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	if err != nil {
		return images.Asset{}, mapErr(err)
	}

	asset := images.Asset{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
		Filename:    out.Metadata[filenameMeta],
	}
	if out.ContentLength != nil {
		asset.Size = *out.ContentLength
	}
	return asset, nil
}

// Delete: S3 no falla al borrar una key inexistente, por eso el HEAD previo.
func (s *Store) Delete(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	key := aws.String(s.key(id))
	if _, err := s.api.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(s.bucket), Key: key}); err != nil {
		return mapErr(err)
	}
	if _, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: aws.String(s.bucket), Key: key}); err != nil {
		return fmt.Errorf("s3store: delete %s: %w", id, err)
	}
	return nil
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func parseID(id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", storage.ErrMalformedID
	}
	return u.String(), nil
}

func mapErr(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return storage.ErrNotFound
		}
	}
	return fmt.Errorf("s3store: %w", err)
}
