package middlewares

import (
	"net/http"
	"strconv"
	"sync"

	"backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Throttle keeps one token bucket per caller, keyed by user id when
// authenticated and client IP otherwise.
type Throttle struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewThrottle(requestsPerSecond, burst int) *Throttle {
	return &Throttle{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (t *Throttle) getLimiter(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.limiters[key]
	if !ok {
		// unbounded growth guard
		if len(t.limiters) > 10000 {
			t.limiters = make(map[string]*rate.Limiter)
		}
		l = rate.NewLimiter(t.rate, t.burst)
		t.limiters[key] = l
	}
	return l
}

func (t *Throttle) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if uid := utils.CurrentUserID(c); uid != 0 {
			key = "user:" + strconv.FormatUint(uint64(uid), 10)
		}

		if !t.getLimiter(key).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "request was throttled"})
			c.Abort()
			return
		}
		c.Next()
	}
}
