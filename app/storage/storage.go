// Package storage is the object-store gateway for student avatars and
// uploaded admission forms. Object writes cannot join the SQL transaction,
// so callers compensate explicitly: a failed row insert removes the object
// it just uploaded.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"swaram-cms/app/config"
)

type Client struct {
	mc     *minio.Client
	bucket string
}

var client *Client

// Init connects to the object store and ensures the bucket exists.
func Init(cfg config.StorageConfig) error {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to object storage: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %q: %w", cfg.Bucket, err)
		}
		log.Printf("Created storage bucket %q", cfg.Bucket)
	}

	client = &Client{mc: mc, bucket: cfg.Bucket}
	return nil
}

func Get() *Client {
	return client
}

// AvatarObjectName builds a unique object name for a student avatar.
func AvatarObjectName(firstName, lastName string) string {
	return fmt.Sprintf("%s-%s-%s.png", firstName, lastName, uuid.NewString())
}

// ObjectNameFromURL recovers the object name from a stored avatar_url,
// which may be a bare object name or a full URL from an earlier import.
func ObjectNameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 {
		return raw
	}
	return parts[len(parts)-1]
}

// Upload stores an object and returns its name.
func (c *Client) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := c.mc.PutObject(ctx, c.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %q: %w", objectName, err)
	}
	return objectName, nil
}

// Remove deletes an object. Used as compensation when a dependent row
// insert fails after the upload committed.
func (c *Client) Remove(ctx context.Context, objectName string) error {
	return c.mc.RemoveObject(ctx, c.bucket, objectName, minio.RemoveObjectOptions{})
}

// PresignedURL returns a temporary download URL for an object.
func (c *Client) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := c.mc.PresignedGetObject(ctx, c.bucket, objectName, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign %q: %w", objectName, err)
	}
	return u.String(), nil
}
