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

type blogRepository struct {
	coll *mongo.Collection
}

var _ domain.BlogRepository = (*blogRepository)(nil)

// NewBlogRepository stores blogs in the "blogs" collection of db.
func NewBlogRepository(db *mongo.Database) *blogRepository {
	return &blogRepository{coll: db.Collection(blogCollection)}
}

func (r *blogRepository) Fetch(ctx context.Context) ([]domain.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return r.find(ctx, bson.D{}, opts)
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (domain.Blog, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.Blog{}, err
	}

	var doc blogDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Blog{}, domain.ErrNotFound
	} else if err != nil {
		return domain.Blog{}, err
	}
	return doc.toDomain(), nil
}

func (r *blogRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Blog, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return nil, nil
	}
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}
	return r.find(ctx, filter)
}

func (r *blogRepository) Store(ctx context.Context, b *domain.Blog) error {
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now

	doc, err := newBlogDocument(b)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	b.ID = doc.ID.Hex()
	return nil
}

func (r *blogRepository) Update(ctx context.Context, id string, patch domain.BlogPatch) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	update := bson.D{{Key: "$set", Value: patchDocument(patch, time.Now())}}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddLikes applies delta with a pipeline update so the counter never drops below zero.
func (r *blogRepository) AddLikes(ctx context.Context, id string, delta int64) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "likes", Value: bson.D{{Key: "$max", Value: bson.A{
				0,
				bson.D{{Key: "$add", Value: bson.A{"$likes", delta}}},
			}}}},
			{Key: "updated_at", Value: "$$NOW"},
		}}},
	}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepository) FetchByLikes(ctx context.Context, limit int64) ([]domain.Blog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "likes", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)
	return r.find(ctx, bson.D{}, opts)
}

func (r *blogRepository) FetchIDs(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, len(docs))
	for i := range docs {
		ids[i] = docs[i].ID.Hex()
	}
	return ids, nil
}

func (r *blogRepository) find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]domain.Blog, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	var docs []blogDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]domain.Blog, len(docs))
	for i := range docs {
		res[i] = docs[i].toDomain()
	}
	return res, nil
}
