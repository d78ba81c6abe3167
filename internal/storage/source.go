package storage

import (
	"ai900_study_backend/internal/config"
	"ai900_study_backend/internal/util"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Source 学习文档来源接口，按文件名读取原始文本
type Source interface {
	ReadDocument(ctx context.Context, name string) ([]byte, error)
}

// LocalSource 本地目录实现
type LocalSource struct {
	Dir string
}

func (s *LocalSource) ReadDocument(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrDocumentUnavailable, err)
	}
	return data, nil
}

// MinioSource 从MinIO桶读取学习文档
type MinioSource struct {
	Client *minio.Client
	Bucket string
}

func (s *MinioSource) ReadDocument(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrDocumentUnavailable, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrDocumentUnavailable, err)
	}
	return data, nil
}

func NewSource(cfg *config.ContentConfig) (Source, error) {
	switch cfg.Source {
	case "", "local":
		return &LocalSource{Dir: cfg.LocalPath}, nil
	case "minio":
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
			Secure: cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}

		exists, err := client.BucketExists(context.Background(), cfg.MinioBucket)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("content bucket %q does not exist", cfg.MinioBucket)
		}

		return &MinioSource{Client: client, Bucket: cfg.MinioBucket}, nil
	default:
		return nil, fmt.Errorf("unsupported content source: %s", cfg.Source)
	}
}
