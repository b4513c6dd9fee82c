package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// clientIdleTTL is how long an IP's limiter survives without traffic.
	clientIdleTTL = 10 * time.Minute
	pruneInterval = time.Minute
)

type limiterClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewStrictRateLimiter limits each client IP on sensitive endpoints
// (login/register) to a small burst refilled once per minute. Idle entries are
// pruned so the per-IP map stays bounded.
func NewStrictRateLimiter() gin.HandlerFunc {
	var (
		mu        sync.Mutex
		clients   = make(map[string]*limiterClient)
		lastPrune = time.Now()
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		if now.Sub(lastPrune) > pruneInterval {
			for addr, client := range clients {
				if now.Sub(client.lastSeen) > clientIdleTTL {
					delete(clients, addr)
				}
			}
			lastPrune = now
		}

		client, exists := clients[ip]
		if !exists {
			client = &limiterClient{limiter: rate.NewLimiter(rate.Every(time.Minute), 5)}
			clients[ip] = client
		}
		client.lastSeen = now
		allowed := client.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many attempts, please wait a moment",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
