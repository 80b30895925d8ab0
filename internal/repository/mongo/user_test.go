package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Guyuepp/bloglist/domain"
)

const userNS = "bloglist.users"

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get by username", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, userNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "root"},
			{Key: "name", Value: "Superuser"},
			{Key: "password_hash", Value: "$2a$10$hash"},
		}))

		u, err := NewUserRepository(mt.DB).GetByUsername(context.TODO(), "root")
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), u.ID)
		assert.Equal(mt, "Superuser", u.Name)
		assert.Equal(mt, "$2a$10$hash", u.PasswordHash)
	})

	mt.Run("unknown username", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, userNS, mtest.FirstBatch))

		_, err := NewUserRepository(mt.DB).GetByUsername(context.TODO(), "ghost")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u := &domain.User{Username: "mluukkai", Name: "Matti Luukkainen", PasswordHash: "hash"}
		require.NoError(mt, NewUserRepository(mt.DB).Insert(context.TODO(), u))
		assert.NotEmpty(mt, u.ID)
	})

	mt.Run("insert duplicate username", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: bloglist.users index: username_1",
		}))

		err := NewUserRepository(mt.DB).Insert(context.TODO(), &domain.User{Username: "root", PasswordHash: "hash"})
		assert.ErrorIs(mt, err, domain.ErrConflict)
	})

	mt.Run("get by ids ignores malformed ids", func(mt *mtest.T) {
		users, err := NewUserRepository(mt.DB).GetByIDs(context.TODO(), []string{"1", "abc"})
		require.NoError(mt, err)
		assert.Empty(mt, users)
	})
}
