package redis

import (
	"context"
	"errors"
	"time"

	"github.com/Baktyiar1/Netflix144p/internal/pkg/consts"

	"github.com/redis/go-redis/v9"
)

// TokenStore 基于 Redis 的 Token 黑名单，过期时间与 Token 剩余有效期一致
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

// Revoke 将签名加入黑名单，ttl <= 0 时不写入
func (s *TokenStore) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, consts.TokenBlacklistKey+signature, 1, ttl).Err()
}

// IsRevoked 判断签名是否已被注销
func (s *TokenStore) IsRevoked(ctx context.Context, signature string) (bool, error) {
	_, err := s.rdb.Get(ctx, consts.TokenBlacklistKey+signature).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
