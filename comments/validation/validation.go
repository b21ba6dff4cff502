package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quillhub/blog-api/comments/models"
)

const maxCommentLength = 2000

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCreateCommentRequest validates a comment append payload.
// A filled honeypot field fails validation with the same generic error shape
// as any other failure, so bots cannot tell the trap apart.
func ValidateCreateCommentRequest(req *models.CreateCommentRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Website != "" {
		return fmt.Errorf("invalid comment data")
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("email is not a valid address")
	}
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("text is required")
	}
	if len(req.Text) > maxCommentLength {
		return fmt.Errorf("text must be at most %d characters", maxCommentLength)
	}

	return nil
}
