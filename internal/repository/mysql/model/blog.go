package model

import (
	"strconv"
	"time"

	"github.com/Guyuepp/bloglist/domain"
)

type Blog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Author    string    `gorm:"type:varchar(255);not null;index"`
	URL       string    `gorm:"column:url;type:varchar(2048);not null"`
	Likes     int64     `gorm:"default:0;index"`
	UserID    int64     `gorm:"column:user_id;index"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Blog) TableName() string {
	return "blogs"
}

func (m *Blog) ToDomain() domain.Blog {
	return domain.Blog{
		ID:     FormatID(m.ID),
		Title:  m.Title,
		Author: m.Author,
		URL:    m.URL,
		Likes:  m.Likes,
		User: domain.User{
			ID: FormatID(m.UserID),
		},
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}

// NewBlogFromDomain converts b. Unparsable ids become 0, which gorm treats as unset.
func NewBlogFromDomain(b *domain.Blog) *Blog {
	id, _ := ParseID(b.ID)
	uid, _ := ParseID(b.User.ID)
	return &Blog{
		ID:        id,
		Title:     b.Title,
		Author:    b.Author,
		URL:       b.URL,
		Likes:     b.Likes,
		UserID:    uid,
		UpdatedAt: b.UpdatedAt,
		CreatedAt: b.CreatedAt,
	}
}

// BlogPatchColumns maps the non-nil fields of p to column values. updated_at
// is always present so the map is never empty.
func BlogPatchColumns(p domain.BlogPatch, now time.Time) map[string]any {
	cols := map[string]any{"updated_at": now}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Author != nil {
		cols["author"] = *p.Author
	}
	if p.URL != nil {
		cols["url"] = *p.URL
	}
	if p.Likes != nil {
		cols["likes"] = *p.Likes
	}
	return cols
}

// FormatID renders an autoincrement key; 0 means no row and renders empty.
func FormatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// ParseID reverses FormatID and rejects anything that is not a positive key.
func ParseID(id string) (int64, error) {
	if id == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.ErrNotFound
	}
	return n, nil
}
