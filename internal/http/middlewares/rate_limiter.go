package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// RateLimiter allows each client IP at most limit requests per fixed window.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	return rateLimiter(limit, window, time.Now)
}

func rateLimiter(limit int, window time.Duration, now func() time.Time) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu        sync.Mutex
		buckets   = make(map[string]*bucket)
		lastPrune = now()
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			t := now()
			key := c.RealIP()

			mu.Lock()
			if t.Sub(lastPrune) > 10*window {
				for k, b := range buckets {
					if t.Sub(b.start) >= window {
						delete(buckets, k)
					}
				}
				lastPrune = t
			}

			b, ok := buckets[key]
			if !ok || t.Sub(b.start) >= window {
				b = &bucket{start: t}
				buckets[key] = b
			}

			if b.count >= limit {
				retryAfter := retryAfterSeconds(window - t.Sub(b.start))
				mu.Unlock()
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return apperrors.ErrTooManyRequests
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}

// retryAfterSeconds rounds the rest of the window up to whole seconds.
func retryAfterSeconds(rest time.Duration) int {
	return max(1, int(math.Ceil(rest.Seconds())))
}
