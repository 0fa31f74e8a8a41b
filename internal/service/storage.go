package service

import (
	"ProtectAdmin/internal/pkg/minio"
	"context"
	"io"
)

// ObjectStorage 对象存储依赖，按接口注入方便单测替换
type ObjectStorage interface {
	// Upload 上传并返回公共访问URL
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	// UploadWithProgress 上传大文件并按字节比例回调进度
	UploadWithProgress(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string, onProgress func(float64)) (string, error)
	Delete(ctx context.Context, objectName string) error
	// ObjectNameFromURL 把URL还原为对象名，外部链接返回 false
	ObjectNameFromURL(url string) (string, bool)
}

type minioStorage struct{}

func NewMinioStorage() ObjectStorage {
	return &minioStorage{}
}

func (s *minioStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	key, err := minio.UploadFile(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}
	return minio.GetPublicURL(key), nil
}

func (s *minioStorage) UploadWithProgress(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string, onProgress func(float64)) (string, error) {
	key, err := minio.UploadFileWithProgress(ctx, objectName, reader, size, contentType, onProgress)
	if err != nil {
		return "", err
	}
	return minio.GetPublicURL(key), nil
}

func (s *minioStorage) Delete(ctx context.Context, objectName string) error {
	return minio.DeleteFile(ctx, objectName)
}

func (s *minioStorage) ObjectNameFromURL(url string) (string, bool) {
	return minio.ObjectNameFromURL(url)
}

// EventPublisher 内容变更事件发布，best-effort
type EventPublisher interface {
	Publish(ctx context.Context, collection string, id string, action string)
}
