package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/bloglist/domain"
	"github.com/Guyuepp/bloglist/domain/mocks"
)

func TestFlushAggregatesPerBlog(t *testing.T) {
	repo := new(mocks.BlogRepository)
	repo.On("AddLikes", mock.Anything, "1", int64(3)).Return(nil).Once()
	repo.On("AddLikes", mock.Anything, "2", int64(1)).Return(nil).Once()

	w := NewSyncLikesWorker(repo, 10, time.Hour)
	w.flush(context.TODO(), []LikeTask{
		{BlogID: "1", DeltaLikes: 1},
		{BlogID: "2", DeltaLikes: 1},
		{BlogID: "1", DeltaLikes: 2},
		{BlogID: "3", DeltaLikes: 1},
		{BlogID: "3", DeltaLikes: -1},
	})

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "AddLikes", mock.Anything, "3", mock.Anything)
}

func TestFlushKeepsGoingOnError(t *testing.T) {
	repo := new(mocks.BlogRepository)
	repo.On("AddLikes", mock.Anything, "1", int64(1)).Return(domain.ErrNotFound).Once()
	repo.On("AddLikes", mock.Anything, "2", int64(1)).Return(nil).Once()

	w := NewSyncLikesWorker(repo, 10, time.Hour)
	w.flush(context.TODO(), []LikeTask{{BlogID: "1", DeltaLikes: 1}, {BlogID: "2", DeltaLikes: 1}})

	repo.AssertExpectations(t)
}

func TestSendDropsWhenFull(t *testing.T) {
	w := NewSyncLikesWorker(new(mocks.BlogRepository), 10, time.Hour)
	for i := 0; i < defaultQueueSize; i++ {
		assert.True(t, w.Send("1", 1))
	}
	assert.False(t, w.Send("1", 1))
}

func TestStartFlushesWhenBatchIsFull(t *testing.T) {
	repo := new(mocks.BlogRepository)
	flushed := make(chan struct{})
	repo.On("AddLikes", mock.Anything, "1", int64(2)).Return(nil).Once().
		Run(func(mock.Arguments) { close(flushed) })

	w := NewSyncLikesWorker(repo, 2, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	w.Send("1", 1)
	w.Send("1", 1)

	select {
	case <-flushed:
	case <-time.After(time.Second):
		t.Fatal("batch was not flushed")
	}
	repo.AssertExpectations(t)
}

func TestStartDrainsOnShutdown(t *testing.T) {
	repo := new(mocks.BlogRepository)
	repo.On("AddLikes", mock.Anything, "9", int64(3)).Return(nil).Once()

	w := NewSyncLikesWorker(repo, 100, time.Hour)
	w.Send("9", 1)
	w.Send("9", 1)
	w.Send("9", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Start(ctx)

	select {
	case <-w.Done():
	default:
		t.Fatal("worker did not stop")
	}
	repo.AssertExpectations(t)
}

func TestSendRejectsAfterStop(t *testing.T) {
	repo := new(mocks.BlogRepository)
	w := NewSyncLikesWorker(repo, 10, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go w.Start(ctx)
	cancel()

	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}

	assert.False(t, w.Send("1", 1))
	repo.AssertNotCalled(t, "AddLikes", mock.Anything, mock.Anything, mock.Anything)
}
