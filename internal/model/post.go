package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxPostContentLength is the upper bound of trimmed post content, in characters.
	MaxPostContentLength = 5000
	// DefaultPage and DefaultLimit apply when a listing request omits them.
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit bounds the page size of every paginated listing.
	MaxLimit = 100
)

// PostStore defines persistence operations for posts and their media.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	// ListByAuthors returns a page of posts written by any of authorIDs ordered by
	// creation time descending, post id descending, together with the unpaginated count.
	ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]Post, int, error)
}

// Post is a content item with its media and author summary.
type Post struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	Media     []Media
	Author    Author
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Media is a URL reference attached to a post.
type Media struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	URL       string
	CreatedAt time.Time
}

// CreatePostParams contains parameters to create a post.
type CreatePostParams struct {
	AuthorID uuid.UUID
	Content  string
	MediaURL string
}

// PageRequest is a 1-indexed offset pagination request.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows skipped before the page starts.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PostPage is a page of posts plus pagination metadata.
type PostPage struct {
	Posts []Post
	Page  int
	Limit int
	Total int
}

// TotalPages returns ceil(Total/Limit).
func (p PostPage) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}
