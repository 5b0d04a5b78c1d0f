package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORSMiddleware handles CORS for browser callers
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Check if origin is allowed
		if isAllowedOrigin(origin, allowedOrigins) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Max-Age", "3600")
		}

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin checks if the origin is in the allowed list
func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			return true
		}
		// Support wildcard suffix matching, e.g. https://*.example.com
		if strings.HasSuffix(allowed, "*") {
			prefix := strings.TrimSuffix(allowed, "*")
			if strings.HasPrefix(origin, prefix) {
				return true
			}
		} else if origin == allowed {
			return true
		}
	}
	return false
}

// ipLimiters holds one token bucket per client IP
type ipLimiters struct {
	limiters map[string]*rate.Limiter
	mutex    sync.Mutex
	perMin   int
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		// perMin requests/minute with a burst of perMin
		limiter = rate.NewLimiter(rate.Limit(float64(l.perMin)/60.0), l.perMin)
		l.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits each client IP to perMin requests per minute
func RateLimitMiddleware(perMin int) gin.HandlerFunc {
	limiters := &ipLimiters{
		limiters: make(map[string]*rate.Limiter),
		perMin:   perMin,
	}

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

// LoggerMiddleware logs requests (simple version for now)
func LoggerMiddleware() gin.HandlerFunc {
	return gin.Logger()
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.Recovery()
}
