package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gwctx "Greenway/pkg/context"
	"Greenway/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// downStore 模拟会话后端不可用
type downStore struct{}

func (downStore) Create(context.Context, session.Kind, string) (string, error) {
	return "", errors.New("connection refused")
}

func (downStore) Resolve(context.Context, session.Kind, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (downStore) Destroy(context.Context, string) error {
	return errors.New("connection refused")
}

func authRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", Auth(store, session.KindUser), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString(gwctx.CtxPrincipalID)})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingAndUnknownToken(t *testing.T) {
	store := session.NewMemoryStore()
	r := authRouter(store)

	require.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	require.Equal(t, http.StatusUnauthorized, get(r, "deadbeef").Code)

	token, err := store.Create(context.Background(), session.KindUser, "alice")
	require.NoError(t, err)
	w := get(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "alice")
}

// 会话后端挂掉是 500，不能把所有人都当成未登录
func TestAuthStoreUnavailable(t *testing.T) {
	r := authRouter(downStore{})

	w := get(r, "sometoken")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "error")
}
