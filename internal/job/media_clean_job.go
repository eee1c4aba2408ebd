package job

import (
	"context"
	log "log/slog"
	"time"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/repository"
)

// MediaLedger 上传登记表
type MediaLedger interface {
	Pending(ctx context.Context) (map[string]dto.MediaTempMetadata, error)
	Forget(ctx context.Context, objectNames ...string) error
}

// ObjectRemover 对象存储删除
type ObjectRemover interface {
	DeleteFile(ctx context.Context, objectName string) error
}

// MediaCleanupJob 回收超过保留期仍未被任何实体引用的上传对象
type MediaCleanupJob struct {
	ledger  MediaLedger
	refs    repository.MediaRefRepo
	storage ObjectRemover
	ttl     time.Duration
	now     func() time.Time
}

func NewMediaCleanupJob(ledger MediaLedger, refs repository.MediaRefRepo, storage ObjectRemover, ttl time.Duration) *MediaCleanupJob {
	return &MediaCleanupJob{
		ledger:  ledger,
		refs:    refs,
		storage: storage,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Run 实现 cron.Job
func (s *MediaCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start media cleanup job")

	pending, err := s.ledger.Pending(ctx)
	if err != nil {
		log.Error("failed to get media temp hash", "err", err)
		return
	}

	deadline := s.now().Add(-s.ttl).Unix()
	var cleaned, kept int
	for objectName, meta := range pending {
		if meta.CreatedAt > deadline {
			continue
		}

		referenced, err := s.refs.IsReferenced(ctx, objectName)
		if err != nil {
			log.Error("failed to check media reference", "object", objectName, "err", err)
			continue
		}
		if !referenced {
			if err = s.storage.DeleteFile(ctx, objectName); err != nil {
				log.Error("failed to delete expired file from minio", "object", objectName, "err", err)
				continue
			}
		}

		if err = s.ledger.Forget(ctx, objectName); err != nil {
			log.Error("failed to remove media record from redis", "object", objectName, "err", err)
			continue
		}
		if referenced {
			kept++
		} else {
			cleaned++
			log.Info("cleanup orphan media resource", "object", objectName, "mime", meta.ContentType)
		}
	}

	if cleaned > 0 || kept > 0 {
		log.Info("media cleanup job finished", "cleaned_count", cleaned, "kept_count", kept)
	}
}
