package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore 可替换的持久化会话实现，key 结构 session:<kind>:<token>
type RedisStore struct {
	rdb *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func key(kind Kind, token string) string {
	return fmt.Sprintf("session:%s:%s", kind, token)
}

func (s *RedisStore) Create(ctx context.Context, kind Kind, principalID string) (string, error) {
	token := newToken()
	if err := s.rdb.Set(ctx, key(kind, token), principalID, 0).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, kind Kind, token string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key(kind, token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	// 连接类错误不能当未登录，redis 挂了应该是 500 不是 401
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	ks := make([]string, 0, len(kinds))
	for _, k := range kinds {
		ks = append(ks, key(k, token))
	}
	return s.rdb.Del(ctx, ks...).Err()
}
