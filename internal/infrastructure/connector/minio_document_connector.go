package connector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/documents"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioDocumentConnector stores rendered documents in a MinIO bucket.
type minioDocumentConnector struct {
	client *minio.Client
	bucket string
	logger logger.Logger
}

// NewMinioDocumentConnector creates a MinIO-backed document store and ensures
// the configured bucket exists.
func NewMinioDocumentConnector(ctx context.Context, settings *config.DocumentStoreSettings, logger logger.Logger) (documents.DocumentConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client, err := minio.New(settings.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(settings.AccessKey, settings.SecretKey, ""),
		Secure:    settings.UseSSL,
		Region:    settings.Region,
		Transport: newTransport(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, settings.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", settings.Bucket, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, settings.Bucket, minio.MakeBucketOptions{Region: settings.Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", settings.Bucket, err)
		}
		logger.Info("Created bucket ", settings.Bucket)
	}

	return &minioDocumentConnector{
		client: client,
		bucket: settings.Bucket,
		logger: logger,
	}, nil
}

// Upload stores content under key and returns the stored size.
func (c *minioDocumentConnector) Upload(ctx context.Context, key string, content []byte, contentType string) (int64, error) {
	info, err := c.client.PutObject(ctx, c.bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	c.logger.Info("Uploaded object ", key, " with size ", info.Size, " bytes")
	return info.Size, nil
}

// Download retrieves the content stored under key.
func (c *minioDocumentConnector) Download(ctx context.Context, key string) ([]byte, error) {
	obj, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch object %s: %w", key, err)
	}
	defer func() {
		if err := obj.Close(); err != nil {
			c.logger.Error("Failed to close object reader: ", err)
		}
	}()

	content, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}

	return content, nil
}

// Delete removes the content stored under key.
func (c *minioDocumentConnector) Delete(ctx context.Context, key string) error {
	err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	c.logger.Info("Deleted object ", key)
	return nil
}

func newTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
