package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mediaModels "github.com/quillhub/blog-api/media/models"
)

func TestStringListScan(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    interface{}
		expected StringList
	}{
		{name: "JSON array bytes", input: []byte(`["Ann","Ben"]`), expected: StringList{"Ann", "Ben"}},
		{name: "JSON array string", input: `["Ann"]`, expected: StringList{"Ann"}},
		{name: "empty array", input: []byte(`[]`), expected: StringList{}},
		{name: "nil column", input: nil, expected: StringList{}},
		{name: "JSON null", input: []byte(`null`), expected: StringList{}},
		{name: "garbage", input: []byte(`{{not json`), expected: StringList{}},
		{name: "wrong shape", input: []byte(`{"a":1}`), expected: StringList{}},
		{name: "unsupported type", input: 42, expected: StringList{}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var l StringList
			require.NoError(t, l.Scan(tc.input))
			assert.Equal(t, tc.expected, l)
		})
	}
}

func TestStringListValue(t *testing.T) {
	t.Parallel()

	t.Run("Nil list persists as empty array", func(t *testing.T) {
		t.Parallel()

		var l StringList
		v, err := l.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(v.([]byte)))
	})

	t.Run("Round trip", func(t *testing.T) {
		t.Parallel()

		in := StringList{"Ann", "Ben"}
		v, err := in.Value()
		require.NoError(t, err)

		var out StringList
		require.NoError(t, out.Scan(v))
		assert.Equal(t, in, out)
	})
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	t.Run("Short body is unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "short", Excerpt("short", ExcerptLimit))
	})

	t.Run("Long body is cut at the rune limit", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("a", ExcerptLimit+50)
		got := Excerpt(body, ExcerptLimit)
		assert.Len(t, []rune(got), ExcerptLimit+3)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("Multi-byte text never splits mid-character", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("日", ExcerptLimit+1)
		got := Excerpt(body, ExcerptLimit)
		assert.Equal(t, strings.Repeat("日", ExcerptLimit)+"...", got)
	})
}

func TestBlogQueryFilterNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       BlogQueryFilter
		expected BlogQueryFilter
	}{
		{
			name:     "defaults",
			in:       BlogQueryFilter{},
			expected: BlogQueryFilter{SortBy: SortLatest, Page: 1, Limit: 10},
		},
		{
			name:     "unknown sort falls back to latest",
			in:       BlogQueryFilter{SortBy: "trending", Page: 2, Limit: 20},
			expected: BlogQueryFilter{SortBy: SortLatest, Page: 2, Limit: 20},
		},
		{
			name:     "popular preserved",
			in:       BlogQueryFilter{SortBy: SortPopular, Page: 1, Limit: 10},
			expected: BlogQueryFilter{SortBy: SortPopular, Page: 1, Limit: 10},
		},
		{
			name:     "limit clamped to 100",
			in:       BlogQueryFilter{SortBy: SortOldest, Page: 1, Limit: 500},
			expected: BlogQueryFilter{SortBy: SortOldest, Page: 1, Limit: 100},
		},
		{
			name:     "negative paging reset",
			in:       BlogQueryFilter{Page: -3, Limit: -1},
			expected: BlogQueryFilter{SortBy: SortLatest, Page: 1, Limit: 10},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := tc.in
			f.Normalize()
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestToSummary(t *testing.T) {
	t.Parallel()

	t.Run("Reduces the featured image to its public reference", func(t *testing.T) {
		t.Parallel()

		b := Blog{
			Title: "Hello",
			Body:  strings.Repeat("x", ExcerptLimit*2),
			FeaturedImage: mediaModels.NullImageDescriptor{
				ImageDescriptor: mediaModels.ImageDescriptor{
					URL:          "https://cdn.example/blog/abc.jpg",
					PublicID:     "blog/abc",
					Format:       "jpeg",
					ResourceType: "image",
				},
				Valid: true,
			},
		}

		s := b.ToSummary()
		require.NotNil(t, s.FeaturedImage)
		assert.Equal(t, "blog/abc", s.FeaturedImage.PublicID)
		assert.Len(t, []rune(s.Excerpt), ExcerptLimit+3)
	})

	t.Run("Absent image stays nil", func(t *testing.T) {
		t.Parallel()

		b := Blog{Title: "No image"}
		assert.Nil(t, b.ToSummary().FeaturedImage)
	})
}

func TestNewBlogPagination(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		page     int
		limit    int
		total    int
		expected BlogPagination
	}{
		{
			name: "first of three pages", page: 1, limit: 10, total: 25,
			expected: BlogPagination{CurrentPage: 1, TotalPages: 3, TotalBlogs: 25, Limit: 10, HasNextPage: true},
		},
		{
			name: "last page", page: 3, limit: 10, total: 25,
			expected: BlogPagination{CurrentPage: 3, TotalPages: 3, TotalBlogs: 25, Limit: 10, HasPrevPage: true},
		},
		{
			name: "empty result", page: 1, limit: 10, total: 0,
			expected: BlogPagination{CurrentPage: 1, TotalPages: 0, TotalBlogs: 0, Limit: 10},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, NewBlogPagination(tc.page, tc.limit, tc.total))
		})
	}
}
