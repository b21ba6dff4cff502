package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillhub/blog-api/comments/models"
)

func validRequest() *models.CreateCommentRequest {
	return &models.CreateCommentRequest{
		Name:  "Ann",
		Email: "ann@example.com",
		Text:  "Nice post!",
	}
}

func TestValidateCreateCommentRequest(t *testing.T) {
	t.Parallel()

	t.Run("Accepts a valid request", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ValidateCreateCommentRequest(validRequest()))
	})

	t.Run("Rejects filled honeypot with a generic message", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		req.Website = "https://spam.example"
		err := ValidateCreateCommentRequest(req)
		assert.Error(t, err)
		assert.NotContains(t, strings.ToLower(err.Error()), "honeypot")
		assert.NotContains(t, strings.ToLower(err.Error()), "website")
	})

	tests := []struct {
		name   string
		mutate func(*models.CreateCommentRequest)
	}{
		{"missing name", func(r *models.CreateCommentRequest) { r.Name = "  " }},
		{"missing email", func(r *models.CreateCommentRequest) { r.Email = "" }},
		{"malformed email", func(r *models.CreateCommentRequest) { r.Email = "not-an-email" }},
		{"email without TLD", func(r *models.CreateCommentRequest) { r.Email = "ann@example" }},
		{"missing text", func(r *models.CreateCommentRequest) { r.Text = "" }},
		{"oversized text", func(r *models.CreateCommentRequest) { r.Text = strings.Repeat("x", 2001) }},
	}

	for _, tt := range tests {
		t.Run("Rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			req := validRequest()
			tt.mutate(req)
			assert.Error(t, ValidateCreateCommentRequest(req))
		})
	}
}
