package submissions

import (
	"github.com/gofiber/fiber/v2"

	constraints "github.com/quillhub/blog-api/internal/middleware/constraints"
	"github.com/quillhub/blog-api/internal/middleware/ratelimit"
	"github.com/quillhub/blog-api/internal/platform/config"

	"github.com/quillhub/blog-api/submissions/handlers"
)

// SubmissionsHandlers holds all the handlers this router needs.
type SubmissionsHandlers struct {
	SubmissionHandler *handlers.SubmissionHandler
}

// RegisterRoutes mounts the submission routes on the blog group. These are
// static relative to the group root, so they must register before the blog
// module's /:id routes.
func RegisterRoutes(group fiber.Router, h *SubmissionsHandlers, cfg *config.Config) {
	submissionLimiter := ratelimit.NewSubmissionLimiter(cfg.RateLimits.Submission)

	group.Post("/submission", submissionLimiter, h.SubmissionHandler.CreateSubmission)
	group.Get("/submission", h.SubmissionHandler.ListSubmissions)
	group.Get("/submission/:id", constraints.RequireUUID("id"), h.SubmissionHandler.GetSubmission)
	group.Patch("/submission/:id/status", constraints.RequireUUID("id"), h.SubmissionHandler.UpdateStatus)
	group.Delete("/submission/:id", constraints.RequireUUID("id"), h.SubmissionHandler.DeleteSubmission)
}
