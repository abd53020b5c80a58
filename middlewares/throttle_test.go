package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestThrottleLimitsBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewThrottle(1, 3).Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	require.Equal(t, []int{200, 200, 200, 429, 429}, codes)
}

func TestThrottleKeysByClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewThrottle(1, 1).Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	get := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, get("10.0.0.1:1"))
	require.Equal(t, http.StatusTooManyRequests, get("10.0.0.1:1"))
	// a different client has its own bucket
	require.Equal(t, http.StatusOK, get("10.0.0.2:1"))
}

func TestThrottleKeysByUserBehindSharedIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", AuthMiddleware(testSecret), NewThrottle(1, 1).Handler(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	get := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	alice := mintToken(t, 1, entity.RoleCustomer)
	bob := mintToken(t, 2, entity.RoleCustomer)

	// two users behind one NAT do not share a bucket
	require.Equal(t, http.StatusOK, get(alice))
	require.Equal(t, http.StatusTooManyRequests, get(alice))
	require.Equal(t, http.StatusOK, get(bob))
}
