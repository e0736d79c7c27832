package service

import (
	"context"
	"creatorhub-go/internal/config"
	"creatorhub-go/pkg/log"
	"creatorhub-go/pkg/storage"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// 允许上传的图片类型
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// 单个文件大小上限 20MB
const maxUploadSize = 20 << 20

// UploadResult 是上传成功后的返回结果。
type UploadResult struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
}

// UploadService 接口定义了媒体文件上传操作。
type UploadService interface {
	UploadImage(ctx context.Context, userID uint, filename string, size int64, contentType string, reader io.Reader) (*UploadResult, error)
	PresignedURL(objectName string) (string, error)
}

type uploadService struct {
	bucketName string
}

// NewUploadService 创建一个新的 UploadService 实例。
func NewUploadService(cfg config.MinIOConfig) UploadService {
	return &uploadService{bucketName: cfg.BucketName}
}

// UploadImage 将图片上传到对象存储，对象名使用 UUID 避免冲突。
func (s *uploadService) UploadImage(ctx context.Context, userID uint, filename string, size int64, contentType string, reader io.Reader) (*UploadResult, error) {
	if size <= 0 || size > maxUploadSize {
		return nil, errors.New("file size must be between 1 byte and 20MB")
	}
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return nil, errors.New("unsupported image type: " + contentType)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectName := fmt.Sprintf("uploads/%d/%s%s", userID, uuid.NewString(), ext)

	if err := storage.PutObject(ctx, s.bucketName, objectName, reader, size, contentType); err != nil {
		log.Errorf("[UploadService] 上传文件失败, userID: %d, object: %s, error: %v", userID, objectName, err)
		return nil, err
	}

	url, err := storage.GetPresignedURL(s.bucketName, objectName, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	log.Infof("[UploadService] 文件上传成功, userID: %d, object: %s", userID, objectName)
	return &UploadResult{ObjectName: objectName, URL: url}, nil
}

// PresignedURL 为已有对象生成预签名访问地址。
func (s *uploadService) PresignedURL(objectName string) (string, error) {
	return storage.GetPresignedURL(s.bucketName, objectName, 24*time.Hour)
}
