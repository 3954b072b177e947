package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// CommentableType names the kind of resource a comment thread hangs off.
// The values are the service's wire names.
type CommentableType string

const (
	CommentableBuild      CommentableType = "build"
	CommentableBeatmapSet CommentableType = "beatmapset"
	CommentableNewsPost   CommentableType = "news_post"
)

// CommentSort orders a comment listing.
type CommentSort string

const (
	SortNew CommentSort = "new"
	SortOld CommentSort = "old"
	SortTop CommentSort = "top"
)

// CommentsRequest describes one page of a comment thread.
type CommentsRequest struct {
	Type CommentableType
	ID   int64
	Sort CommentSort

	// Page is 1-based; zero means the first page.
	Page int
}

// Comment is a single entry in a thread.
type Comment struct {
	ID        int64     `json:"id"`
	ParentID  *int64    `json:"parent_id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	VotesUp   int       `json:"votes_count"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentUser is the sidecar author record referenced by Comment.UserID.
type CommentUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CommentBundle is one page of a thread plus its author records.
type CommentBundle struct {
	Comments      []Comment     `json:"comments"`
	Users         []CommentUser `json:"users"`
	Total         int           `json:"total"`
	TopLevelCount int           `json:"top_level_count"`
	HasMore       bool          `json:"has_more"`
}

// UserByID resolves an author from the sidecar, or nil.
func (b *CommentBundle) UserByID(id int64) *CommentUser {
	for i := range b.Users {
		if b.Users[i].ID == id {
			return &b.Users[i]
		}
	}
	return nil
}

// ListComments fetches one page of the comment thread for the given
// resource.
func (c *Client) ListComments(ctx context.Context, r CommentsRequest) (*CommentBundle, error) {
	if r.Type == "" {
		return nil, fmt.Errorf("commentable type is required")
	}
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Sort == "" {
		r.Sort = SortNew
	}

	q := url.Values{}
	q.Set("commentable_type", string(r.Type))
	q.Set("commentable_id", strconv.FormatInt(r.ID, 10))
	q.Set("sort", string(r.Sort))
	q.Set("page", strconv.Itoa(r.Page))

	reqURL := fmt.Sprintf("%s/comments?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	var bundle CommentBundle
	if err := c.getJSON(req, &bundle); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return &bundle, nil
}
