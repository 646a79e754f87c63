package main

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/genius-ayush/voiceHire/internal/auth"
	"github.com/genius-ayush/voiceHire/pkg/response"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// AuthMiddleware verifies the bearer token and exposes the recruiter claims
// to downstream handlers. A missing or malformed header is 401; a token that
// fails verification (bad signature, expired, garbage) is 403.
func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "authorization header is missing")
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 || fields[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(app.Config.JWT.Secret, fields[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.Forbidden(c, "token expired")
			} else {
				response.Forbidden(c, "invalid token")
			}
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// RateLimitMiddleware applies a per-client-IP token bucket.
func (app *application) RateLimitMiddleware() gin.HandlerFunc {
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	// drop limiters for clients idle longer than 3 minutes
	go func() {
		for {
			time.Sleep(time.Minute)
			mu.Lock()
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(rate.Limit(app.Config.Limiter.RPS), app.Config.Limiter.Burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			response.TooManyRequests(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
