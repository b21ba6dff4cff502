// Package ratelimit provides rate limiting middleware for write endpoints
// that accept anonymous input, such as community submissions.
package ratelimit

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/quillhub/blog-api/internal/pkg/log"
	"github.com/quillhub/blog-api/internal/platform/config"
)

// Config holds the configuration for the rate limiting middleware.
type Config struct {
	// Name identifies the protected endpoint in logs and responses.
	Name string

	// Max requests allowed per Window per key.
	Max    int
	Window time.Duration

	// Next defines a function to skip this middleware when returned true.
	Next func(c *fiber.Ctx) bool

	// KeyGenerator derives the throttle key (defaults to client IP + path).
	KeyGenerator func(c *fiber.Ctx) string

	// LimitReached defines the response when the rate limit is exceeded.
	LimitReached func(c *fiber.Ctx) error
}

func configDefault(cfg Config) Config {
	if cfg.Name == "" {
		cfg.Name = "request"
	}
	if cfg.Max <= 0 {
		cfg.Max = 10
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}

	if cfg.KeyGenerator == nil {
		cfg.KeyGenerator = func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		}
	}

	if cfg.LimitReached == nil {
		name := cfg.Name
		window := cfg.Window
		cfg.LimitReached = func(c *fiber.Ctx) error {
			log.Warn("[RateLimit] Rate limit exceeded for %s from IP: %s", name, c.IP())

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":       "RATE_LIMIT_EXCEEDED",
				"message":    fmt.Sprintf("Too many %s attempts. Please try again later.", name),
				"retryAfter": int(window.Seconds()),
			})
		}
	}

	return cfg
}

// New creates a new rate limiting middleware handler.
func New(cfg Config) fiber.Handler {
	cfg = configDefault(cfg)

	return limiter.New(limiter.Config{
		Max:          cfg.Max,
		Expiration:   cfg.Window,
		KeyGenerator: cfg.KeyGenerator,
		LimitReached: cfg.LimitReached,
		Next:         cfg.Next,
	})
}

// NewSubmissionLimiter creates the rate limiter for the submission intake
// endpoint from platform configuration. A disabled config yields a limiter
// that skips every request.
func NewSubmissionLimiter(cfg config.RateLimitConfig) fiber.Handler {
	return New(Config{
		Name:   "submission",
		Max:    cfg.Max,
		Window: cfg.Window,
		Next: func(c *fiber.Ctx) bool {
			return !cfg.Enabled
		},
	})
}
