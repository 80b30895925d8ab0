package response

import "github.com/Guyuepp/bloglist/domain"

// Blog keeps the field order clients of the original API rely on.
type Blog struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	URL    string   `json:"url"`
	Likes  int64    `json:"likes"`
	ID     string   `json:"id"`
	User   *Creator `json:"user,omitempty"`
}

// Creator is the populated creator of a blog.
type Creator struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}

// NewBlogFromDomain: Domain -> Response
func NewBlogFromDomain(b *domain.Blog) Blog {
	res := Blog{
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		ID:     b.ID,
	}
	if b.User.ID != "" {
		res.User = &Creator{
			Username: b.User.Username,
			Name:     b.User.Name,
			ID:       b.User.ID,
		}
	}
	return res
}

func NewBlogsFromDomain(blogs []domain.Blog) []Blog {
	res := make([]Blog, len(blogs))
	for i := range blogs {
		res[i] = NewBlogFromDomain(&blogs[i])
	}
	return res
}
