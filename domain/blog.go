package domain

import (
	"context"
	"strings"
	"time"
)

// RankSize is how many blogs the likes ranking keeps
const RankSize = 100

// Blog is representing the Blog data struct
type Blog struct {
	ID        string    // Unique identifier assigned by the store
	Title     string    // Blog title
	Author    string    // Author of the linked post, not necessarily the creator
	URL       string    // Link to the post
	Likes     int64     // Number of likes, never negative
	User      User      // Creator, empty for records seeded without one
	CreatedAt time.Time // Creation timestamp
	UpdatedAt time.Time // Last update timestamp
}

// Validate reports ErrMalformedBlog when a required field is empty or likes are negative.
func (b *Blog) Validate() error {
	if strings.TrimSpace(b.Title) == "" ||
		strings.TrimSpace(b.Author) == "" ||
		strings.TrimSpace(b.URL) == "" ||
		b.Likes < 0 {
		return ErrMalformedBlog
	}
	return nil
}

// BlogPatch carries the fields of a partial update. Nil fields are left untouched.
type BlogPatch struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int64
}

// Apply copies the non-nil fields of p onto b.
func (p BlogPatch) Apply(b *Blog) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.URL != nil {
		b.URL = *p.URL
	}
	if p.Likes != nil {
		b.Likes = *p.Likes
	}
}

// BlogRepository defines the contract for blog data persistence.
// Both the document store and the sql store implement it, and so does the
// caching coordinator that wraps them.
type BlogRepository interface {
	// Fetch retrieves every blog in insertion order.
	Fetch(ctx context.Context) ([]Blog, error)

	// GetByID retrieves a single blog by its ID.
	// Returns ErrNotFound if the blog doesn't exist.
	GetByID(ctx context.Context, id string) (Blog, error)

	// GetByIDs retrieves the blogs with the given IDs. Missing IDs are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]Blog, error)

	// Store creates a new blog and backfills its ID and timestamps.
	Store(ctx context.Context, b *Blog) error

	// Update writes the non-nil fields of patch to the blog and leaves the
	// other columns alone. Returns ErrNotFound if the blog doesn't exist.
	Update(ctx context.Context, id string, patch BlogPatch) error

	// Delete removes a blog by its ID.
	// Returns ErrNotFound if not exists
	Delete(ctx context.Context, id string) error

	// AddLikes adds deltaLikes to the likes of a blog.
	AddLikes(ctx context.Context, id string, deltaLikes int64) error

	// FetchByLikes returns at most limit blogs ordered by likes, highest first.
	FetchByLikes(ctx context.Context, limit int64) ([]Blog, error)

	// FetchIDs returns the IDs of all stored blogs.
	FetchIDs(ctx context.Context) ([]string, error)
}

// BlogCache is the cache in front of BlogRepository.
type BlogCache interface {
	// GetAll returns the cached list snapshot. expired is true once the
	// logical expiry has passed; the data is still usable.
	GetAll(ctx context.Context) (blogs []Blog, expired bool, err error)
	SetAll(ctx context.Context, blogs []Blog, ttl time.Duration) error

	GetBlog(ctx context.Context, id string) (Blog, error)
	SetBlog(ctx context.Context, b *Blog, ttl time.Duration) error

	// DeleteBlog drops the blog and everything derived from it.
	DeleteBlog(ctx context.Context, id string) error

	// Invalidate drops the list snapshot and the likes ranking.
	Invalidate(ctx context.Context) error

	// GetTopLiked returns ID and Likes of the ranked blogs, or ErrCacheMiss.
	GetTopLiked(ctx context.Context, limit int64) ([]Blog, error)
	SetTopLiked(ctx context.Context, ids []string, scores []float64, ttl time.Duration) error
}

type BlogUsecase interface {
	Fetch(ctx context.Context) ([]Blog, error)
	GetByID(ctx context.Context, id string) (Blog, error)
	Store(ctx context.Context, b *Blog) error
	Update(ctx context.Context, id string, patch BlogPatch) (Blog, error)
	Delete(ctx context.Context, id string, requesterID string) error
	Like(ctx context.Context, id string) error
	FetchTopLiked(ctx context.Context, limit int64) ([]Blog, error)
	InitBloomFilter(ctx context.Context) error
}
