package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/bloglist/domain"
)

// BlogCache is a mock type for the BlogCache type
type BlogCache struct {
	mock.Mock
}

func (_m *BlogCache) GetAll(ctx context.Context) ([]domain.Blog, bool, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Blog)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *BlogCache) SetAll(ctx context.Context, blogs []domain.Blog, ttl time.Duration) error {
	ret := _m.Called(ctx, blogs, ttl)
	return ret.Error(0)
}

func (_m *BlogCache) GetBlog(ctx context.Context, id string) (domain.Blog, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Blog), ret.Error(1)
}

func (_m *BlogCache) SetBlog(ctx context.Context, b *domain.Blog, ttl time.Duration) error {
	ret := _m.Called(ctx, b, ttl)
	return ret.Error(0)
}

func (_m *BlogCache) DeleteBlog(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *BlogCache) Invalidate(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *BlogCache) GetTopLiked(ctx context.Context, limit int64) ([]domain.Blog, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *BlogCache) SetTopLiked(ctx context.Context, ids []string, scores []float64, ttl time.Duration) error {
	ret := _m.Called(ctx, ids, scores, ttl)
	return ret.Error(0)
}

var _ domain.BlogCache = (*BlogCache)(nil)
