package models

import (
	"database/sql/driver"
	"encoding/json"
	"sort"
	"time"
)

// Comment is a single reader response embedded in a post's comment list.
// Comments have no identity outside their post: the whole list lives in one
// JSONB column on the blogs row.
type Comment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// ParsedTime returns the comment timestamp as a time.Time. Unparseable
// timestamps sort as the zero time (i.e. last under descending order).
func (c Comment) ParsedTime() time.Time {
	t, err := time.Parse(time.RFC3339, c.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CommentList is the denormalized comments column. It implements sql.Scanner
// and driver.Valuer so repositories can read and write it directly, and its
// Scan applies the tolerant multi-shape decode: depending on driver behavior
// the column may arrive as JSON text, as an already-structured value, or as
// NULL, and legacy rows may hold a keyed object instead of an array. Every
// shape normalizes to an ordered list; parse failures normalize to empty.
type CommentList []Comment

// Scan implements the sql.Scanner interface.
func (l *CommentList) Scan(value interface{}) error {
	*l = Normalize(value)
	return nil
}

// Value implements the driver.Valuer interface. A nil list persists as the
// empty JSON array, never as NULL.
func (l CommentList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Comment{})
	}
	return json.Marshal([]Comment(l))
}

// Normalize maps any physical representation of the comments column to a
// canonical ordered list:
//   - nil / absent            -> empty list
//   - JSON text ([]byte or string), array-shaped -> decoded list
//   - JSON text, object-shaped                   -> values of the object
//   - structured array ([]interface{})           -> re-decoded elements
//   - structured map (map[string]interface{})    -> values of the map
//   - anything else, or any decode failure       -> empty list
//
// Object values carry no order, so they are sorted by timestamp ascending to
// keep normalization deterministic.
func Normalize(value interface{}) CommentList {
	switch v := value.(type) {
	case nil:
		return CommentList{}
	case []byte:
		return normalizeJSON(v)
	case string:
		return normalizeJSON([]byte(v))
	case CommentList:
		return v
	case []Comment:
		return CommentList(v)
	case []interface{}, map[string]interface{}:
		// Structured values round-trip through JSON so element decoding
		// follows the same rules as text input.
		data, err := json.Marshal(v)
		if err != nil {
			return CommentList{}
		}
		return normalizeJSON(data)
	default:
		return CommentList{}
	}
}

func normalizeJSON(data []byte) CommentList {
	if len(data) == 0 {
		return CommentList{}
	}

	var list []Comment
	if err := json.Unmarshal(data, &list); err == nil {
		if list == nil {
			return CommentList{}
		}
		return CommentList(list)
	}

	var keyed map[string]Comment
	if err := json.Unmarshal(data, &keyed); err == nil {
		out := make(CommentList, 0, len(keyed))
		for _, c := range keyed {
			out = append(out, c)
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ParsedTime().Before(out[j].ParsedTime())
		})
		return out
	}

	return CommentList{}
}

// SortedNewestFirst returns a copy of the list ordered by timestamp
// descending. The sort is stable, so equal timestamps keep their original
// insertion order.
func (l CommentList) SortedNewestFirst() CommentList {
	out := make(CommentList, len(l))
	copy(out, l)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ParsedTime().After(out[j].ParsedTime())
	})
	return out
}

// Page slices the list using 1-based page numbers. Out-of-range pages yield
// an empty slice.
func (l CommentList) Page(page, limit int) CommentList {
	start := (page - 1) * limit
	if start < 0 || start >= len(l) {
		return CommentList{}
	}
	end := start + limit
	if end > len(l) {
		end = len(l)
	}
	return l[start:end]
}

// Pagination is the paging metadata returned alongside a comment page.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalComments int  `json:"totalComments"`
	Limit         int  `json:"limit"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
}

// NewPagination computes paging metadata for a list of total items.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalComments: total,
		Limit:         limit,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
	}
}

// CreateCommentRequest is the payload for appending a comment.
// Website is a honeypot: humans never fill it, bots do.
type CreateCommentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Text    string `json:"text"`
	Website string `json:"website"`
}

// CommentsListResponse is the response for listing a post's comments.
// Count carries the stored comments_count column verbatim; it can diverge
// from len(Comments) when corrupt data was tolerated on read, and that
// divergence is surfaced rather than reconciled.
type CommentsListResponse struct {
	Comments   []Comment  `json:"comments"`
	Pagination Pagination `json:"pagination"`
	Count      int64      `json:"count"`
}
