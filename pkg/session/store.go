package session

import (
	"context"
	"encoding/hex"

	"Greenway/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Kind 会话命名空间。三类主体互相隔离，user 的 token 不能当 shop 用。
type Kind string

const (
	KindUser  Kind = "user"
	KindShop  Kind = "shop"
	KindAdmin Kind = "admin"
)

var kinds = []Kind{KindUser, KindShop, KindAdmin}

// Store maps opaque tokens to principal ids. Every login issues a fresh
// token; old tokens stay valid until logged out individually.
type Store interface {
	Create(ctx context.Context, kind Kind, principalID string) (string, error)
	// Resolve 的 ok=false 表示 token 不在该命名空间里；err 只在
	// 后端存储不可用时返回，调用方应答 500 而不是 401。
	Resolve(ctx context.Context, kind Kind, token string) (string, bool, error)
	// Destroy removes the token from whichever namespace holds it.
	Destroy(ctx context.Context, token string) error
}

// NewStore 按配置选择实现，默认进程内存
func NewStore(cfg *config.Config, rdb *redis.Client) Store {
	if cfg.Session != nil && cfg.Session.Driver == "redis" {
		return NewRedisStore(rdb)
	}
	return NewMemoryStore()
}

func newToken() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
