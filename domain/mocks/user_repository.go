package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/bloglist/domain"
)

// UserRepository is a mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (_m *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	ret := _m.Called(ctx, username)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (_m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	ret := _m.Called(ctx, u)
	if rf, ok := ret.Get(0).(func(context.Context, *domain.User) error); ok {
		return rf(ctx, u)
	}
	return ret.Error(0)
}

func (_m *UserRepository) Fetch(ctx context.Context) ([]domain.User, error) {
	ret := _m.Called(ctx)
	var r0 []domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.User)
	}
	return r0, ret.Error(1)
}

var _ domain.UserRepository = (*UserRepository)(nil)
