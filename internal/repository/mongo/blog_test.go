package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Guyuepp/bloglist/domain"
)

const blogNS = "bloglist.blogs"

func blogDoc(id primitive.ObjectID, title, author string, likes int64) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "author", Value: author},
		{Key: "url", Value: "https://example.com/" + id.Hex()},
		{Key: "likes", Value: likes},
	}
}

func TestBlogRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("fetch decodes every document", func(mt *mtest.T) {
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, blogNS, mtest.FirstBatch,
			blogDoc(first, "Go To Statement Considered Harmful", "Edsger W. Dijkstra", 5),
			blogDoc(second, "React patterns", "Michael Chan", 7),
		))

		res, err := NewBlogRepository(mt.DB).Fetch(context.TODO())
		require.NoError(mt, err)
		require.Len(mt, res, 2)
		assert.Equal(mt, first.Hex(), res[0].ID)
		assert.Equal(mt, "Michael Chan", res[1].Author)
		assert.Equal(mt, int64(7), res[1].Likes)
		assert.Equal(mt, "", res[1].User.ID)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, blogNS, mtest.FirstBatch,
			blogDoc(id, "First class tests", "Robert C. Martin", 10),
		))

		res, err := NewBlogRepository(mt.DB).GetByID(context.TODO(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "First class tests", res.Title)
	})

	mt.Run("get by id without match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, blogNS, mtest.FirstBatch))

		_, err := NewBlogRepository(mt.DB).GetByID(context.TODO(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		_, err := NewBlogRepository(mt.DB).GetByID(context.TODO(), "42")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("store assigns an id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		b := &domain.Blog{Title: "t", Author: "a", URL: "u", User: domain.User{ID: primitive.NewObjectID().Hex()}}
		require.NoError(mt, NewBlogRepository(mt.DB).Store(context.TODO(), b))
		_, err := primitive.ObjectIDFromHex(b.ID)
		assert.NoError(mt, err)
		assert.False(mt, b.CreatedAt.IsZero())
	})

	mt.Run("store rejects a malformed creator id", func(mt *mtest.T) {
		b := &domain.Blog{Title: "t", Author: "a", URL: "u", User: domain.User{ID: "nope"}}
		assert.ErrorIs(mt, NewBlogRepository(mt.DB).Store(context.TODO(), b), domain.ErrBadParamInput)
	})

	mt.Run("update without match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		likes := int64(1)
		err := NewBlogRepository(mt.DB).Update(context.TODO(), primitive.NewObjectID().Hex(), domain.BlogPatch{Likes: &likes})
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("update matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		title := "renamed"
		err := NewBlogRepository(mt.DB).Update(context.TODO(), primitive.NewObjectID().Hex(), domain.BlogPatch{Title: &title})
		assert.NoError(mt, err)
	})

	mt.Run("add likes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		assert.NoError(mt, NewBlogRepository(mt.DB).AddLikes(context.TODO(), primitive.NewObjectID().Hex(), 3))
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		assert.NoError(mt, NewBlogRepository(mt.DB).Delete(context.TODO(), primitive.NewObjectID().Hex()))
	})

	mt.Run("delete without match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		err := NewBlogRepository(mt.DB).Delete(context.TODO(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("fetch ids", func(mt *mtest.T) {
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, blogNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: a}},
			bson.D{{Key: "_id", Value: b}},
		))

		ids, err := NewBlogRepository(mt.DB).FetchIDs(context.TODO())
		require.NoError(mt, err)
		assert.Equal(mt, []string{a.Hex(), b.Hex()}, ids)
	})
}

func TestPatchDocument(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	title := "renamed"
	assert.Equal(t, bson.D{
		{Key: "title", Value: "renamed"},
		{Key: "updated_at", Value: now},
	}, patchDocument(domain.BlogPatch{Title: &title}, now))

	author, url, likes := "Martin", "https://example.com", int64(0)
	assert.Equal(t, bson.D{
		{Key: "author", Value: "Martin"},
		{Key: "url", Value: "https://example.com"},
		{Key: "likes", Value: int64(0)},
		{Key: "updated_at", Value: now},
	}, patchDocument(domain.BlogPatch{Author: &author, URL: &url, Likes: &likes}, now))
}
