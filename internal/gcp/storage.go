package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/Lllllllleong/translatorstorage/internal/models"
	"google.golang.org/api/iterator"
)

// Bucket is the storage gateway: every object the service reads or writes
// lives in this one bucket.
type Bucket struct {
	client  *storage.Client
	handle  *storage.BucketHandle
	name    string
	initErr error
}

// NewBucket connects to the named bucket. On failure the returned Bucket is
// still usable but reports Ready() == false for the life of the process.
func NewBucket(ctx context.Context, bucketName string) (*Bucket, error) {
	b := &Bucket{name: bucketName}
	if strings.TrimSpace(bucketName) == "" {
		b.initErr = fmt.Errorf("BUCKET_NAME environment variable must be set")
		return b, b.initErr
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		b.initErr = fmt.Errorf("failed to create storage client: %w", err)
		return b, b.initErr
	}

	b.client = client
	b.handle = client.Bucket(bucketName)
	slog.Info("Connected to bucket.", "bucket", bucketName)
	return b, nil
}

func (b *Bucket) Ready() bool {
	return b != nil && b.handle != nil
}

func (b *Bucket) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

// Exists reports whether the object is present.
func (b *Bucket) Exists(ctx context.Context, name string) (bool, error) {
	if !b.Ready() {
		return false, ErrUnavailable
	}
	_, err := b.handle.Object(name).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat gs://%s/%s: %w", b.name, name, err)
	}
	return true, nil
}

// Read downloads the whole object as text.
func (b *Bucket) Read(ctx context.Context, name string) (*models.StoredObject, error) {
	if !b.Ready() {
		return nil, ErrUnavailable
	}
	obj := b.handle.Object(name)

	attrs, err := obj.Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat gs://%s/%s: %w", b.name, name, err)
	}

	reader, err := obj.NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get GCS object reader for gs://%s/%s: %w", b.name, name, err)
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to download gs://%s/%s: %w", b.name, name, err)
	}

	return &models.StoredObject{
		Name:        name,
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
		Created:     attrs.Created,
		Content:     string(body),
	}, nil
}

// Write creates or overwrites an object and returns the number of bytes written.
func (b *Bucket) Write(ctx context.Context, name, content, contentType string) (int64, error) {
	if !b.Ready() {
		return 0, ErrUnavailable
	}
	writer := b.handle.Object(name).NewWriter(ctx)
	writer.ContentType = contentType

	n, err := io.Copy(writer, strings.NewReader(content))
	if err != nil {
		_ = writer.Close()
		slog.Error("Failed to copy content to GCS object.", "object", name, "error", err)
		return 0, fmt.Errorf("failed to write to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		slog.Error("Failed to close GCS writer.", "object", name, "error", err)
		return 0, fmt.Errorf("failed to finalize GCS write: %w", err)
	}
	return n, nil
}

// List returns every object in the bucket.
func (b *Bucket) List(ctx context.Context) ([]models.FileInfo, error) {
	if !b.Ready() {
		return nil, ErrUnavailable
	}
	it := b.handle.Objects(ctx, nil)

	files := []models.FileInfo{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects in %s: %w", b.name, err)
		}
		files = append(files, models.NewFileInfo(attrs.Name, attrs.Size, attrs.Created, attrs.ContentType))
	}
	return files, nil
}

func (b *Bucket) Close() error {
	if b != nil && b.client != nil {
		return b.client.Close()
	}
	return nil
}
