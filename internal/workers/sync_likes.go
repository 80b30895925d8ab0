package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloglist/domain"
)

const (
	defaultQueueSize     = 1024
	defaultBatchSize     = 100
	defaultFlushInterval = time.Second
)

// LikeTask is one queued change of a blog's likes.
type LikeTask struct {
	BlogID     string
	DeltaLikes int64
}

type syncLikesWorker struct {
	blogRepo      domain.BlogRepository
	ch            chan LikeTask
	batchSize     int
	flushInterval time.Duration
	done          chan struct{}

	// mu guards stopped; Send holds it shared so no task lands after the final drain
	mu      sync.RWMutex
	stopped bool
}

var _ domain.SyncLikesWorker = (*syncLikesWorker)(nil)

// NewSyncLikesWorker batches like deltas and writes them to br. Non-positive
// batchSize or flushInterval fall back to the defaults.
func NewSyncLikesWorker(br domain.BlogRepository, batchSize int, flushInterval time.Duration) *syncLikesWorker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if flushInterval <= 0 {
		flushInterval = defaultFlushInterval
	}
	return &syncLikesWorker{
		blogRepo:      br,
		ch:            make(chan LikeTask, defaultQueueSize),
		batchSize:     batchSize,
		flushInterval: flushInterval,
		done:          make(chan struct{}),
	}
}

// Send queues the delta. It returns false when the queue is full or the
// worker has stopped; the caller must write the delta itself.
func (s *syncLikesWorker) Send(blogID string, deltaLikes int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stopped {
		return false
	}

	select {
	case s.ch <- LikeTask{BlogID: blogID, DeltaLikes: deltaLikes}:
		return true
	default:
		logrus.Info("SyncLikesWorker's channel is full, task rejected")
		return false
	}
}

// Start runs until ctx is cancelled, then drains the queue and flushes once more.
func (s *syncLikesWorker) Start(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	batch := make([]LikeTask, 0, s.batchSize)
	for {
		select {
		case task := <-s.ch:
			batch = append(batch, task)
			if len(batch) >= s.batchSize {
				s.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = batch[:0]
		case <-ctx.Done():
			logrus.Info("shutting down SyncLikesWorker, flushing remain tasks...")
			s.mu.Lock()
			s.stopped = true
			s.mu.Unlock()
		drain:
			for {
				select {
				case task := <-s.ch:
					batch = append(batch, task)
				default:
					break drain
				}
			}
			// ctx is already cancelled
			s.flush(context.WithoutCancel(ctx), batch)
			return
		}
	}
}

// Done is closed once Start has returned.
func (s *syncLikesWorker) Done() <-chan struct{} {
	return s.done
}

func (s *syncLikesWorker) flush(ctx context.Context, batch []LikeTask) {
	if len(batch) == 0 {
		return
	}

	deltas := make(map[string]int64, len(batch))
	order := make([]string, 0, len(batch))
	for _, task := range batch {
		if _, ok := deltas[task.BlogID]; !ok {
			order = append(order, task.BlogID)
		}
		deltas[task.BlogID] += task.DeltaLikes
	}

	for _, id := range order {
		delta := deltas[id]
		if delta == 0 {
			continue
		}
		if err := s.blogRepo.AddLikes(ctx, id, delta); err != nil {
			logrus.Errorf("failed to add %d likes to blog %s: %v", delta, id, err)
		}
	}
}
