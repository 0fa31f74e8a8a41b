package minio

import (
	"ProtectAdmin/internal/api/config"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// BuildObjectName 按命名空间 + 毫秒时间戳 + 原始文件名生成对象名，避免同名覆盖
func BuildObjectName(namespace string, filename string) string {
	return namespace + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + filename
}

// UploadFile 上传文件到MinIO
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}

	uploadInfo, err := Client.PutObject(ctx, BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// UploadFileWithProgress 上传文件并按已传字节比例回调进度
func UploadFileWithProgress(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string, onProgress func(float64)) (string, error) {
	if onProgress == nil {
		return UploadFile(ctx, objectName, reader, size, contentType)
	}
	pr := &progressReader{reader: reader, total: size, onProgress: onProgress}
	return UploadFile(ctx, objectName, pr, size, contentType)
}

// DeleteFile 删除MinIO中的文件
func DeleteFile(ctx context.Context, objectName string) error {
	if Client == nil {
		return fmt.Errorf("minio client is not initialized")
	}

	err := Client.RemoveObject(ctx, BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// ListObjects 列出指定前缀下的全部对象
func ListObjects(ctx context.Context, prefix string) ([]minio.ObjectInfo, error) {
	if Client == nil {
		return nil, fmt.Errorf("minio client is not initialized")
	}

	var objects []minio.ObjectInfo
	for obj := range Client.ListObjects(ctx, BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// GetPublicURL 获取文件的公共访问URL
func GetPublicURL(objectName string) string {
	cfg := config.Cfg.MinIO

	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, cfg.Endpoint, BucketName, objectName)
}

// ObjectNameFromURL 把公共URL还原为对象名。非本存储桶的外部链接返回 false。
func ObjectNameFromURL(url string) (string, bool) {
	prefix := GetPublicURL("")
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	objectName := strings.TrimPrefix(url, prefix)
	if objectName == "" {
		return "", false
	}
	return objectName, true
}

type progressReader struct {
	reader      io.Reader
	total       int64
	transferred int64
	onProgress  func(float64)
}

func (s *progressReader) Read(p []byte) (int, error) {
	n, err := s.reader.Read(p)
	if n > 0 {
		s.transferred += int64(n)
		if s.total > 0 {
			s.onProgress(float64(s.transferred) / float64(s.total))
		}
	}
	return n, err
}
