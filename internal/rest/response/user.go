package response

import "github.com/Guyuepp/bloglist/domain"

type User struct {
	Username string     `json:"username"`
	Name     string     `json:"name"`
	ID       string     `json:"id"`
	Blogs    []UserBlog `json:"blogs"`
}

// UserBlog is a blog listed under its creator.
type UserBlog struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int64  `json:"likes"`
	ID     string `json:"id"`
}

// NewUserFromDomain never exposes the password hash.
func NewUserFromDomain(u *domain.User, blogs []domain.Blog) User {
	res := User{
		Username: u.Username,
		Name:     u.Name,
		ID:       u.ID,
		Blogs:    make([]UserBlog, 0, len(blogs)),
	}
	for _, b := range blogs {
		res.Blogs = append(res.Blogs, UserBlog{
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
			Likes:  b.Likes,
			ID:     b.ID,
		})
	}
	return res
}

type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func NewSessionFromDomain(s domain.Session) Session {
	return Session{
		Token:    s.Token,
		Username: s.Username,
		Name:     s.Name,
	}
}
