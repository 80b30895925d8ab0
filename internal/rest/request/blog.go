package request

import "github.com/Guyuepp/bloglist/domain"

type Blog struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	URL    string `json:"url" binding:"required"`
	Likes  *int64 `json:"likes" binding:"omitempty,min=0"`
}

// ToDomain: Request -> Domain, likes default to 0
func (r *Blog) ToDomain() domain.Blog {
	b := domain.Blog{
		Title:  r.Title,
		Author: r.Author,
		URL:    r.URL,
	}
	if r.Likes != nil {
		b.Likes = *r.Likes
	}
	return b
}

// BlogPatch is the body of PUT /api/blogs/:id. Absent fields are left untouched.
type BlogPatch struct {
	Title  *string `json:"title" binding:"omitempty,min=1"`
	Author *string `json:"author" binding:"omitempty,min=1"`
	URL    *string `json:"url" binding:"omitempty,min=1"`
	Likes  *int64  `json:"likes" binding:"omitempty,min=0"`
}

func (r *BlogPatch) ToDomain() domain.BlogPatch {
	return domain.BlogPatch{
		Title:  r.Title,
		Author: r.Author,
		URL:    r.URL,
		Likes:  r.Likes,
	}
}
