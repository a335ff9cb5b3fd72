package session

import (
	"context"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// MemoryStore 进程内会话，重启即全部失效，无过期策略
type MemoryStore struct {
	tokens map[Kind]cmap.ConcurrentMap[string, string]
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	tokens := make(map[Kind]cmap.ConcurrentMap[string, string], len(kinds))
	for _, k := range kinds {
		tokens[k] = cmap.New[string]()
	}
	return &MemoryStore{tokens: tokens}
}

func (s *MemoryStore) Create(_ context.Context, kind Kind, principalID string) (string, error) {
	token := newToken()
	s.tokens[kind].Set(token, principalID)
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, kind Kind, token string) (string, bool, error) {
	id, ok := s.tokens[kind].Get(token)
	return id, ok, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	for _, k := range kinds {
		s.tokens[k].Remove(token)
	}
	return nil
}
