package response

import "github.com/Guyuepp/bloglist/domain"

// empty renders as {} for statistics over no blogs.
type empty struct{}

type Favorite struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int64  `json:"likes"`
}

type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int64  `json:"blogs"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int64  `json:"likes"`
}

type AuthorStat struct {
	Author string `json:"author"`
	Blogs  int64  `json:"blogs"`
	Likes  int64  `json:"likes"`
}

type TotalLikes struct {
	TotalLikes int64 `json:"total_likes"`
}

type Stats struct {
	TotalLikes int64 `json:"total_likes"`
	Favorite   any   `json:"favorite"`
	MostBlogs  any   `json:"most_blogs"`
	MostLikes  any   `json:"most_likes"`
}

func NewFavorite(f domain.FavoriteSummary) any {
	if f.IsZero() {
		return empty{}
	}
	return Favorite{Title: f.Title, Author: f.Author, Likes: f.Likes}
}

func NewAuthorBlogs(a domain.AuthorBlogs) any {
	if a.IsZero() {
		return empty{}
	}
	return AuthorBlogs{Author: a.Author, Blogs: a.Blogs}
}

func NewAuthorLikes(a domain.AuthorLikes) any {
	if a.IsZero() {
		return empty{}
	}
	return AuthorLikes{Author: a.Author, Likes: a.Likes}
}

func NewStats(s domain.BlogStats) Stats {
	return Stats{
		TotalLikes: s.TotalLikes,
		Favorite:   NewFavorite(s.Favorite),
		MostBlogs:  NewAuthorBlogs(s.MostBlogs),
		MostLikes:  NewAuthorLikes(s.MostLikes),
	}
}

func NewAuthorStats(stats []domain.AuthorStat) []AuthorStat {
	res := make([]AuthorStat, len(stats))
	for i, s := range stats {
		res[i] = AuthorStat{Author: s.Author, Blogs: s.Blogs, Likes: s.Likes}
	}
	return res
}
