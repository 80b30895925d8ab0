package domain

import "context"

type SyncLikesWorker interface {
	Start(ctx context.Context)

	// Send queues deltaLikes for the blog. It never blocks; it returns false
	// when the buffer is full or the worker has stopped.
	Send(blogID string, deltaLikes int64) bool
}
