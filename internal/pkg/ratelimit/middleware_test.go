package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(0, time.Minute) // limit 0 -> always deny
	r := gin.New()
	r.Use(Middleware(lim))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 429, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "Too many attempts. Try again later.", body["error"])
	require.Equal(t, "RATE_LIMITED", body["code"])
	require.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestMiddleware_UnderLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(2, time.Minute)
	r := gin.New()
	r.Use(Middleware(lim))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, 429, w.Code)
}

func TestAllow_WindowSlides(t *testing.T) {
	lim := New(1, 10*time.Millisecond)

	require.True(t, lim.Allow("k"))
	require.False(t, lim.Allow("k"))

	time.Sleep(15 * time.Millisecond)
	require.True(t, lim.Allow("k"))
}

func TestCleanup_DropsExpiredKeys(t *testing.T) {
	lim := New(1, 5*time.Millisecond)
	lim.Allow("k")

	time.Sleep(10 * time.Millisecond)
	lim.Cleanup()

	lim.mu.Lock()
	_, exists := lim.requests["k"]
	lim.mu.Unlock()
	require.False(t, exists)
}
