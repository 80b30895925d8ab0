package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/bloglist/domain"
)

// SyncLikesWorker is a mock type for the SyncLikesWorker type
type SyncLikesWorker struct {
	mock.Mock
}

func (_m *SyncLikesWorker) Start(ctx context.Context) {
	_m.Called(ctx)
}

func (_m *SyncLikesWorker) Send(blogID string, deltaLikes int64) bool {
	ret := _m.Called(blogID, deltaLikes)
	return ret.Bool(0)
}

var _ domain.SyncLikesWorker = (*SyncLikesWorker)(nil)
