package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/quillhub/blog-api/internal/platform/config"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Post("/api/blog/submission", handler, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func TestSubmissionLimiter(t *testing.T) {
	t.Run("Allows up to Max requests then returns 429", func(t *testing.T) {
		app := newTestApp(NewSubmissionLimiter(config.RateLimitConfig{
			Enabled: true,
			Max:     3,
			Window:  time.Minute,
		}))

		for i := 0; i < 3; i++ {
			resp, err := app.Test(httptest.NewRequest("POST", "/api/blog/submission", nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		}

		resp, err := app.Test(httptest.NewRequest("POST", "/api/blog/submission", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	})

	t.Run("Disabled config skips limiting", func(t *testing.T) {
		app := newTestApp(NewSubmissionLimiter(config.RateLimitConfig{
			Enabled: false,
			Max:     1,
			Window:  time.Minute,
		}))

		for i := 0; i < 5; i++ {
			resp, err := app.Test(httptest.NewRequest("POST", "/api/blog/submission", nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		}
	})

	t.Run("Defaults applied for zero values", func(t *testing.T) {
		cfg := configDefault(Config{})
		require.Equal(t, 10, cfg.Max)
		require.Equal(t, time.Minute, cfg.Window)
		require.NotNil(t, cfg.KeyGenerator)
		require.NotNil(t, cfg.LimitReached)
	})
}
