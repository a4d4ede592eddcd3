package middlewares

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Antdol/LittleLemonAPI/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Buckets idle for longer than idleTTL are dropped by a sweep that runs at
// most once per sweepEvery. A recreated bucket starts full, which an idle
// bucket would have been anyway.
const (
	idleTTL    = 10 * time.Minute
	sweepEvery = time.Minute
)

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// Throttle keeps one token bucket per authenticated user and per client IP
// for anonymous callers. A zero rate disables that class.
type Throttle struct {
	userPerMin int
	anonPerMin int
	now        func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func NewThrottle(userPerMin, anonPerMin int) *Throttle {
	return &Throttle{
		userPerMin: userPerMin,
		anonPerMin: anonPerMin,
		now:        time.Now,
		buckets:    map[string]*bucket{},
	}
}

func (t *Throttle) limiter(key string, perMin int) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if now.Sub(t.lastSweep) >= sweepEvery {
		t.sweep(now)
	}
	b, ok := t.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)}
		t.buckets[key] = b
	}
	b.lastSeen = now
	return b.lim
}

// sweep must be called with mu held.
func (t *Throttle) sweep(now time.Time) {
	for k, b := range t.buckets {
		if now.Sub(b.lastSeen) > idleTTL {
			delete(t.buckets, k)
		}
	}
	t.lastSweep = now
}

// Allow reports whether the caller identified by key may proceed.
func (t *Throttle) Allow(key string, perMin int) bool {
	if perMin <= 0 {
		return true
	}
	return t.limiter(key, perMin).AllowN(t.now(), 1)
}

func (t *Throttle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, perMin := "ip:"+c.ClientIP(), t.anonPerMin
		if uid := utils.CurrentUserID(c); uid != 0 {
			key, perMin = "user:"+strconv.FormatUint(uint64(uid), 10), t.userPerMin
		}
		if !t.Allow(key, perMin) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Request was throttled."})
			return
		}
		c.Next()
	}
}
