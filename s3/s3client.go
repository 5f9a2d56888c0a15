package s3client

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

var Client *minio.Client

// Provider - object storage operations used by the file storage
type Provider interface {
	MakeBucket(ctx context.Context, bucketName string) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, bucketName, objectName string) error
}

type s3client struct {
	minioClient *minio.Client
}

func NewClient(minioClient *minio.Client) Provider {
	return &s3client{minioClient: minioClient}
}

func (s s3client) MakeBucket(ctx context.Context, bucketName string) error {
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

func (s s3client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := s.minioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (s s3client) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	obj, err := s.minioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy, Stat surfaces a missing object
	if _, err = obj.Stat(); err != nil {
		obj.Close()
		return nil, errors.Wrap(err, "object not available")
	}
	return obj, nil
}

func (s s3client) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	return s.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
}
