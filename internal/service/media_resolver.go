package service

import (
	"context"
	"io"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
)

// MediaResolver 将实体上保存的对象名解析为可访问的 URL
type MediaResolver interface {
	PublicURL(ctx context.Context, objectName string) string
}

// MediaStore 对象存储，生产环境由 MinIO 实现
type MediaStore interface {
	MediaResolver
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// MediaTracker 登记新上传的对象，未被引用的对象由清理任务回收
type MediaTracker interface {
	Track(ctx context.Context, objectName string, meta dto.MediaTempMetadata) error
}
