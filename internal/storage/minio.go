package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/config"
)

type MinIOStorage struct {
	Client     *minio.Client
	BucketName string
}

// NewMinIOStorage initializes a MinIO client and makes sure the configured
// bucket exists.
func NewMinIOStorage(ctx context.Context, cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Infof("bucket %q created", cfg.Bucket)
	}

	return &MinIOStorage{
		Client:     client,
		BucketName: cfg.Bucket,
	}, nil
}

// UploadFile uploads a file to the configured MinIO bucket.
func (m *MinIOStorage) UploadFile(ctx context.Context, objectName string, reader io.Reader) error {
	_, err := m.Client.PutObject(ctx, m.BucketName, objectName, reader, -1, minio.PutObjectOptions{
		ContentType: "application/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload file %q to MinIO: %w", objectName, err)
	}

	log.Infof("uploaded %q to bucket %q", objectName, m.BucketName)
	return nil
}
