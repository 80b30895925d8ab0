package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/bloglist/domain"
)

// BlogRepository is a mock type for the BlogRepository type
type BlogRepository struct {
	mock.Mock
}

func (_m *BlogRepository) Fetch(ctx context.Context) ([]domain.Blog, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *BlogRepository) GetByID(ctx context.Context, id string) (domain.Blog, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Blog), ret.Error(1)
}

func (_m *BlogRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Blog, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *BlogRepository) Store(ctx context.Context, b *domain.Blog) error {
	ret := _m.Called(ctx, b)
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Blog) error); ok {
		return rf(ctx, b)
	}
	return ret.Error(0)
}

func (_m *BlogRepository) Update(ctx context.Context, id string, patch domain.BlogPatch) error {
	ret := _m.Called(ctx, id, patch)
	return ret.Error(0)
}

func (_m *BlogRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *BlogRepository) AddLikes(ctx context.Context, id string, deltaLikes int64) error {
	ret := _m.Called(ctx, id, deltaLikes)
	return ret.Error(0)
}

func (_m *BlogRepository) FetchByLikes(ctx context.Context, limit int64) ([]domain.Blog, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *BlogRepository) FetchIDs(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)
	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

var _ domain.BlogRepository = (*BlogRepository)(nil)
