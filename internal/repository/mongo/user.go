package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Guyuepp/bloglist/domain"
)

type userRepository struct {
	coll *mongo.Collection
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository stores users in the "users" collection of db.
func NewUserRepository(db *mongo.Database) *userRepository {
	return &userRepository{coll: db.Collection(userCollection)}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.User{}, err
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *userRepository) Insert(ctx context.Context, u *domain.User) error {
	now := time.Now()
	doc := userDocument{
		ID:           primitive.NewObjectID(),
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return err
	}

	u.ID = doc.ID.Hex()
	u.CreatedAt, u.UpdatedAt = now, now
	return nil
}

func (r *userRepository) Fetch(ctx context.Context) ([]domain.User, error) {
	return r.find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *userRepository) findOne(ctx context.Context, filter any) (domain.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrNotFound
	} else if err != nil {
		return domain.User{}, err
	}
	return doc.toDomain(), nil
}

func (r *userRepository) find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]domain.User, len(docs))
	for i := range docs {
		res[i] = docs[i].toDomain()
	}
	return res, nil
}
