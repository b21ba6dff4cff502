package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidStatus(StatusReceived))
	assert.True(t, IsValidStatus(StatusAccepted))
	assert.True(t, IsValidStatus(StatusPublished))
	assert.False(t, IsValidStatus("Rejected"))
	assert.False(t, IsValidStatus("received"))
	assert.False(t, IsValidStatus(""))
}

func TestSubmissionQueryFilterNormalize(t *testing.T) {
	t.Parallel()

	t.Run("Drops an unrecognized status", func(t *testing.T) {
		t.Parallel()

		f := SubmissionQueryFilter{Status: "Pending"}
		f.Normalize()
		assert.Empty(t, f.Status)
	})

	t.Run("Keeps a valid status and applies paging defaults", func(t *testing.T) {
		t.Parallel()

		f := SubmissionQueryFilter{Status: StatusAccepted}
		f.Normalize()
		assert.Equal(t, StatusAccepted, f.Status)
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 10, f.Limit)
	})

	t.Run("Clamps an oversized limit", func(t *testing.T) {
		t.Parallel()

		f := SubmissionQueryFilter{Limit: 1000}
		f.Normalize()
		assert.Equal(t, 100, f.Limit)
	})
}
