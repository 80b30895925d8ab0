package domain

import "context"

// FavoriteSummary is the projection of the most liked blog.
// The zero value means there is no favorite.
type FavoriteSummary struct {
	Title  string
	Author string
	Likes  int64
}

func (f FavoriteSummary) IsZero() bool {
	return f == FavoriteSummary{}
}

// AuthorBlogs is the author with the most blogs and their blog count.
type AuthorBlogs struct {
	Author string
	Blogs  int64
}

func (a AuthorBlogs) IsZero() bool {
	return a == AuthorBlogs{}
}

// AuthorLikes is the author with the most likes summed over their blogs.
type AuthorLikes struct {
	Author string
	Likes  int64
}

func (a AuthorLikes) IsZero() bool {
	return a == AuthorLikes{}
}

// AuthorStat holds both metrics for a single author.
type AuthorStat struct {
	Author string
	Blogs  int64
	Likes  int64
}

// BlogStats bundles every statistic computed over one snapshot.
type BlogStats struct {
	TotalLikes int64
	Favorite   FavoriteSummary
	MostBlogs  AuthorBlogs
	MostLikes  AuthorLikes
}

type StatsUsecase interface {
	TotalLikes(ctx context.Context) (int64, error)
	FavoriteBlog(ctx context.Context) (FavoriteSummary, error)
	MostBlogs(ctx context.Context) (AuthorBlogs, error)
	MostLikes(ctx context.Context) (AuthorLikes, error)
	Summary(ctx context.Context) (BlogStats, error)
	Authors(ctx context.Context) ([]AuthorStat, error)
}
