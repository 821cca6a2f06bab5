// Package storage holds the two attachment backends: a GCS bucket for the
// remote variant and a session-scoped in-memory store for the local one.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"

	"TalentBoard-backend/internal/model"
)

// CloudStorageClient uploads attachments into a publicly readable bucket.
type CloudStorageClient struct {
	BucketName string
	Client     *storage.Client
}

// NewCloudStorageClient dials GCS using ambient credentials.
func NewCloudStorageClient(ctx context.Context, bucketName string) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud storage client: %v", err)
	}
	return &CloudStorageClient{
		BucketName: bucketName,
		Client:     client,
	}, nil
}

// ObjectKey builds the bucket key for an upload: {category}/{timestamp}-{name}.
func ObjectKey(category, name string) string {
	return fmt.Sprintf("%s/%d-%s", category, time.Now().UnixMilli(), name)
}

// Upload writes data under objectName and returns a stable public reference.
func (c *CloudStorageClient) Upload(ctx context.Context, objectName string, data []byte, originalName string) (model.FileReference, error) {
	obj := c.Client.Bucket(c.BucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		return model.FileReference{}, fmt.Errorf("failed to write data to object: %v", err)
	}
	if err := wc.Close(); err != nil {
		return model.FileReference{}, fmt.Errorf("failed to close object writer: %v", err)
	}
	return model.FileReference{
		Name: originalName,
		URL:  fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.BucketName, objectName),
	}, nil
}
