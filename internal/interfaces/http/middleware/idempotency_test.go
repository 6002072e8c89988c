package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	redispkg "resolution-desk.backend/pkg/redis"
)

func idempotentRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), IdempotencyMiddleware())
	r.POST("/x", handler)
	return r
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(ConversationIDHeader, "conv-1")
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyMiddleware_PassthroughWithoutKeyOrRedis(t *testing.T) {
	redispkg.SetClient(nil)
	r := idempotentRouter(func(c *gin.Context) { c.Status(http.StatusNoContent) })

	require.Equal(t, http.StatusNoContent, postWithKey(r, "").Code)
	require.Equal(t, http.StatusNoContent, postWithKey(r, "key-0").Code)
}

func TestIdempotencyMiddleware_RedisErrorPassthrough(t *testing.T) {
	cli := redisv9.NewClient(&redisv9.Options{Addr: "127.0.0.1:0", DialTimeout: 50 * time.Millisecond})
	redispkg.SetClient(cli)
	t.Cleanup(func() { redispkg.SetClient(nil) })

	r := idempotentRouter(func(c *gin.Context) { c.Status(http.StatusAccepted) })
	require.Equal(t, http.StatusAccepted, postWithKey(r, "idem-key").Code)
}

func TestIdempotencyMiddleware_ProcessingConflict(t *testing.T) {
	srv := startMiniRedis(t)
	srv.Set("idempotency:conv-1:key-1", processingMarker)

	r := idempotentRouter(func(c *gin.Context) { c.Status(http.StatusCreated) })
	w := postWithKey(r, "key-1")
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "CONFLICT")
}

func TestIdempotencyMiddleware_LegacyPlainBodyReplays(t *testing.T) {
	srv := startMiniRedis(t)
	srv.Set("idempotency:conv-1:key-2", `{"ok":true}`)

	r := idempotentRouter(func(c *gin.Context) { c.Status(http.StatusCreated) })
	w := postWithKey(r, "key-2")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "true", w.Header().Get("X-Idempotency-Hit"))
	require.Equal(t, `{"ok":true}`, w.Body.String())
}

func TestIdempotencyMiddleware_StoresAndReplaysSuccess(t *testing.T) {
	startMiniRedis(t)
	calls := 0
	r := idempotentRouter(func(c *gin.Context) {
		calls++
		c.String(http.StatusCreated, `{"id":1}`)
	})

	w := postWithKey(r, "key-3")
	require.Equal(t, http.StatusCreated, w.Code)

	w2 := postWithKey(r, "key-3")
	require.Equal(t, http.StatusCreated, w2.Code)
	require.Equal(t, "true", w2.Header().Get("X-Idempotency-Hit"))
	require.Equal(t, `{"id":1}`, w2.Body.String())
	require.Equal(t, 1, calls)
}

func TestIdempotencyMiddleware_DeletesKeyOnFailure(t *testing.T) {
	startMiniRedis(t)
	r := idempotentRouter(func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "boom")
	})

	w := postWithKey(r, "key-4")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	_, err := redispkg.Get(context.Background(), "idempotency:conv-1:key-4")
	require.True(t, redispkg.IsNil(err))
}

func TestIdempotencyMiddleware_SetNXFailureConflicts(t *testing.T) {
	startMiniRedis(t)
	orig := redisSetNX
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) {
		return false, errors.New("readonly replica")
	}
	t.Cleanup(func() { redisSetNX = orig })

	r := idempotentRouter(func(c *gin.Context) { c.Status(http.StatusCreated) })
	require.Equal(t, http.StatusConflict, postWithKey(r, "key-5").Code)
}
