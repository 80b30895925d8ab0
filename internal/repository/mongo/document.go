package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Guyuepp/bloglist/domain"
)

const (
	blogCollection = "blogs"
	userCollection = "users"
)

type blogDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Author    string             `bson:"author"`
	URL       string             `bson:"url"`
	Likes     int64              `bson:"likes"`
	UserID    primitive.ObjectID `bson:"user,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *blogDocument) toDomain() domain.Blog {
	return domain.Blog{
		ID:        formatID(d.ID),
		Title:     d.Title,
		Author:    d.Author,
		URL:       d.URL,
		Likes:     d.Likes,
		User:      domain.User{ID: formatID(d.UserID)},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func newBlogDocument(b *domain.Blog) (*blogDocument, error) {
	userID, err := parseOptionalID(b.User.ID)
	if err != nil {
		return nil, err
	}
	return &blogDocument{
		Title:     b.Title,
		Author:    b.Author,
		URL:       b.URL,
		Likes:     b.Likes,
		UserID:    userID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}, nil
}

// patchDocument is the $set body for p: only the fields p carries, plus updated_at.
func patchDocument(p domain.BlogPatch, now time.Time) bson.D {
	set := bson.D{}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Author != nil {
		set = append(set, bson.E{Key: "author", Value: *p.Author})
	}
	if p.URL != nil {
		set = append(set, bson.E{Key: "url", Value: *p.URL})
	}
	if p.Likes != nil {
		set = append(set, bson.E{Key: "likes", Value: *p.Likes})
	}
	return append(set, bson.E{Key: "updated_at", Value: now})
}

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Name         string             `bson:"name"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *userDocument) toDomain() domain.User {
	return domain.User{
		ID:           formatID(d.ID),
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func formatID(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

// parseID maps anything that is not an ObjectID hex to ErrNotFound:
// such an id cannot name a stored document.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrNotFound
	}
	return oid, nil
}

func parseOptionalID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrBadParamInput
	}
	return oid, nil
}

func parseIDs(ids []string) []primitive.ObjectID {
	res := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			res = append(res, oid)
		}
	}
	return res
}
