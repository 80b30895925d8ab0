package mysql

import (
	"context"
	"testing"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/bloglist/domain"
)

var userColumns = []string{"id", "username", "name", "password_hash", "created_at", "updated_at"}

func TestGetByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "root", "Superuser", "$2a$10$hash", time.Now(), time.Now()))

		u, err := NewUserRepository(db).GetByUsername(context.TODO(), "root")
		require.NoError(t, err)
		assert.Equal(t, "1", u.ID)
		assert.Equal(t, "$2a$10$hash", u.PasswordHash)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := NewUserRepository(db).GetByUsername(context.TODO(), "nobody")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInsert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(3, 1))

		u := &domain.User{Username: "dsilva", Name: "Diogo Silva", PasswordHash: "hash"}
		require.NoError(t, NewUserRepository(db).Insert(context.TODO(), u))
		assert.Equal(t, "3", u.ID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `users`").
			WillReturnError(&mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry 'root' for key 'idx_users_username'"})

		err := NewUserRepository(db).Insert(context.TODO(), &domain.User{Username: "root", PasswordHash: "hash"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestGetByIDsSkipsMalformed(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id in").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(2, "mluukkai", "Matti", "x", time.Now(), time.Now()))

	users, err := NewUserRepository(db).GetByIDs(context.TODO(), []string{"2", "bogus"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "mluukkai", users[0].Username)
}
