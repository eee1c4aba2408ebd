package redis

import (
	"context"
	log "log/slog"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/consts"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// MediaTracker 记录新上传的对象，供清理任务回收无人引用的文件
type MediaTracker struct {
	rdb *redis.Client
}

func NewMediaTracker(rdb *redis.Client) *MediaTracker {
	return &MediaTracker{rdb: rdb}
}

func (s *MediaTracker) Track(ctx context.Context, objectName string, meta dto.MediaTempMetadata) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, consts.MediaTempKey, objectName, raw).Err()
}

// Pending 返回全部登记中的对象，格式损坏的条目会被跳过
func (s *MediaTracker) Pending(ctx context.Context) (map[string]dto.MediaTempMetadata, error) {
	all, err := s.rdb.HGetAll(ctx, consts.MediaTempKey).Result()
	if err != nil {
		return nil, err
	}
	res := make(map[string]dto.MediaTempMetadata, len(all))
	for objectName, val := range all {
		var meta dto.MediaTempMetadata
		if err = json.Unmarshal([]byte(val), &meta); err != nil {
			log.WarnContext(ctx, "invalid media meta format", "object", objectName)
			continue
		}
		res[objectName] = meta
	}
	return res, nil
}

func (s *MediaTracker) Forget(ctx context.Context, objectNames ...string) error {
	if len(objectNames) == 0 {
		return nil
	}
	return s.rdb.HDel(ctx, consts.MediaTempKey, objectNames...).Err()
}
