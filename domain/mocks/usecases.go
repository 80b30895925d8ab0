package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/bloglist/domain"
)

// BlogUsecase is a mock type for the BlogUsecase type
type BlogUsecase struct {
	mock.Mock
}

func (_m *BlogUsecase) Fetch(ctx context.Context) ([]domain.Blog, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *BlogUsecase) GetByID(ctx context.Context, id string) (domain.Blog, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Blog), ret.Error(1)
}

func (_m *BlogUsecase) Store(ctx context.Context, b *domain.Blog) error {
	ret := _m.Called(ctx, b)
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Blog) error); ok {
		return rf(ctx, b)
	}
	return ret.Error(0)
}

func (_m *BlogUsecase) Update(ctx context.Context, id string, patch domain.BlogPatch) (domain.Blog, error) {
	ret := _m.Called(ctx, id, patch)
	return ret.Get(0).(domain.Blog), ret.Error(1)
}

func (_m *BlogUsecase) Delete(ctx context.Context, id string, requesterID string) error {
	ret := _m.Called(ctx, id, requesterID)
	return ret.Error(0)
}

func (_m *BlogUsecase) Like(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *BlogUsecase) FetchTopLiked(ctx context.Context, limit int64) ([]domain.Blog, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *BlogUsecase) InitBloomFilter(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// UserUsecase is a mock type for the UserUsecase type
type UserUsecase struct {
	mock.Mock
}

func (_m *UserUsecase) Register(ctx context.Context, name, username, password string) (domain.User, error) {
	ret := _m.Called(ctx, name, username, password)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (_m *UserUsecase) Login(ctx context.Context, username, password string) (domain.Session, error) {
	ret := _m.Called(ctx, username, password)
	return ret.Get(0).(domain.Session), ret.Error(1)
}

func (_m *UserUsecase) Fetch(ctx context.Context) ([]domain.User, error) {
	ret := _m.Called(ctx)
	var r0 []domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.User)
	}
	return r0, ret.Error(1)
}

// StatsUsecase is a mock type for the StatsUsecase type
type StatsUsecase struct {
	mock.Mock
}

func (_m *StatsUsecase) TotalLikes(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *StatsUsecase) FavoriteBlog(ctx context.Context) (domain.FavoriteSummary, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.FavoriteSummary), ret.Error(1)
}

func (_m *StatsUsecase) MostBlogs(ctx context.Context) (domain.AuthorBlogs, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.AuthorBlogs), ret.Error(1)
}

func (_m *StatsUsecase) MostLikes(ctx context.Context) (domain.AuthorLikes, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.AuthorLikes), ret.Error(1)
}

func (_m *StatsUsecase) Summary(ctx context.Context) (domain.BlogStats, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.BlogStats), ret.Error(1)
}

func (_m *StatsUsecase) Authors(ctx context.Context) ([]domain.AuthorStat, error) {
	ret := _m.Called(ctx)
	var r0 []domain.AuthorStat
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.AuthorStat)
	}
	return r0, ret.Error(1)
}

var (
	_ domain.BlogUsecase  = (*BlogUsecase)(nil)
	_ domain.UserUsecase  = (*UserUsecase)(nil)
	_ domain.StatsUsecase = (*StatsUsecase)(nil)
)
