package minio

import (
	"context"
	"fmt"
	"io"
	log "log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// UploadFile 上传文件到主桶，返回对象名
func (s *Storage) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	info, err := s.client.PutObject(ctx, s.cfg.MainBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return info.Key, nil
}

// DeleteFile 删除主桶中的文件
func (s *Storage) DeleteFile(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.cfg.MainBucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// PublicURL 将对象名解析为可访问的地址
// 已是完整 URL 的值原样返回，空值返回空串
func (s *Storage) PublicURL(ctx context.Context, objectName string) string {
	if objectName == "" || isAbsoluteURL(objectName) {
		return objectName
	}

	if s.cfg.UsePublicLink {
		return fmt.Sprintf("https://%s/%s/%s", s.cfg.ExternalEndpoint, s.cfg.MainBucket, strings.TrimPrefix(objectName, "/"))
	}

	expiry := time.Duration(s.cfg.PresignExpiry) * time.Second
	u, err := s.client.PresignedGetObject(ctx, s.cfg.MainBucket, objectName, expiry, url.Values{})
	if err != nil {
		log.WarnContext(ctx, "presign object failed", "object", objectName, "err", err)
		return ""
	}
	return u.String()
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
