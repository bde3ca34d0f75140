package s3store

import (
	"bytes"
	"context"
	"io"
	"testing"

	"patitas-eternas/internal/domain/images"
	"patitas-eternas/internal/ports/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type object struct {
	data        []byte
	contentType string
	meta        map[string]string
}

type fakeS3 struct {
	objects map[string]object
	deleted []string
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = object{data: data, contentType: aws.ToString(in.ContentType), meta: in.Metadata}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	o, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(o.data)),
		ContentType:   aws.String(o.contentType),
		ContentLength: aws.Int64(int64(len(o.data))),
		Metadata:      o.meta,
	}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestStore_RoundTrip(t *testing.T) {
	api := &fakeS3{objects: map[string]object{}}
	store := NewWithAPI(api, "patitas", "images/")
	ctx := context.Background()

	id, err := store.Save(ctx, images.Upload{
		Filename:    "1700000000000-luna.webp",
		ContentType: "image/webp",
		Size:        4,
		Body:        bytes.NewReader([]byte("RIFF")),
	})
	require.NoError(t, err)
	require.Contains(t, api.objects, "images/"+id)

	asset, err := store.Open(ctx, id)
	require.NoError(t, err)
	data, err := io.ReadAll(asset.Body)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data))
	assert.Equal(t, "image/webp", asset.ContentType)
	assert.Equal(t, "1700000000000-luna.webp", asset.Filename)
	assert.EqualValues(t, 4, asset.Size)

	require.NoError(t, store.Delete(ctx, id))
	assert.Equal(t, []string{"images/" + id}, api.deleted)
}

func TestStore_MissingAndMalformed(t *testing.T) {
	api := &fakeS3{objects: map[string]object{}}
	store := NewWithAPI(api, "patitas", "images/")
	ctx := context.Background()
	missing := "0f8fad5b-d9cb-469f-a165-70867728950e"

	_, err := store.Open(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, missing), storage.ErrNotFound)
	assert.Empty(t, api.deleted)

	_, err = store.Open(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, storage.ErrMalformedID)
}
