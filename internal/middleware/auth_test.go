package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"edulift_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activityRecorder struct {
	seen chan uint
}

func (r *activityRecorder) UpdateLastSeen(userID uint) error {
	r.seen <- userID
	return nil
}

func TestActivityMiddlewareStampsAuthenticatedCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := &activityRecorder{seen: make(chan uint, 1)}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/tests", nil)
	c.Set("user", &util.Claims{UserID: 42})

	ActivityMiddleware(recorder)(c)

	// The update runs in a goroutine off the request path.
	select {
	case userID := <-recorder.seen:
		assert.Equal(t, uint(42), userID)
	case <-time.After(time.Second):
		t.Fatal("last-seen update never fired")
	}
}

func TestActivityMiddlewareIgnoresAnonymousCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := &activityRecorder{seen: make(chan uint, 1)}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/health", nil)

	ActivityMiddleware(recorder)(c)

	select {
	case userID := <-recorder.seen:
		t.Fatalf("unexpected last-seen update for user %d", userID)
	case <-time.After(50 * time.Millisecond):
	}
	require.False(t, c.IsAborted())
}
