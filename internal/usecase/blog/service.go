package blog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/bloglist/domain"
)

type Service struct {
	blogRepo        domain.BlogRepository
	userRepo        domain.UserRepository
	bloomRepo       domain.BloomRepository
	syncLikesWorker domain.SyncLikesWorker
	bloomGroup      singleflight.Group
}

const bloomRebuildTimeout = time.Minute

var _ domain.BlogUsecase = (*Service)(nil)

// NewService will create a new blog service object
func NewService(b domain.BlogRepository, u domain.UserRepository, bloom domain.BloomRepository, s domain.SyncLikesWorker) *Service {
	return &Service{
		blogRepo:        b,
		userRepo:        u,
		bloomRepo:       bloom,
		syncLikesWorker: s,
	}
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Blog, error) {
	return s.blogRepo.Fetch(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Blog, error) {
	// 布隆过滤器判断一定不存在的直接返回
	exists, err := s.bloomRepo.Exists(ctx, id)
	switch {
	case errors.Is(err, domain.ErrCacheMiss):
		// 过滤器被淘汰或清空，后台重建，本次直接查库
		logrus.Warn("bloom filter is missing, rebuilding")
		go s.rebuildBloomFilter()
	case err != nil:
		logrus.Warnf("bloom filter check failed for blog %s: %v", id, err)
	case !exists:
		return domain.Blog{}, domain.ErrNotFound
	}
	return s.blogRepo.GetByID(ctx, id)
}

func (s *Service) rebuildBloomFilter() {
	_, err, _ := s.bloomGroup.Do("bloom", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), bloomRebuildTimeout)
		defer cancel()
		return nil, s.InitBloomFilter(ctx)
	})
	if err != nil {
		logrus.Errorf("failed to rebuild bloom filter: %v", err)
	}
}

func (s *Service) Store(ctx context.Context, b *domain.Blog) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if err := s.blogRepo.Store(ctx, b); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, b.ID); err != nil {
		logrus.Errorf("failed to add blog %s to bloom filter: %v", b.ID, err)
	}

	if b.User.ID == "" {
		return nil
	}
	creator, err := s.userRepo.GetByID(ctx, b.User.ID)
	if err != nil {
		logrus.Warnf("failed to load creator %s of blog %s: %v", b.User.ID, b.ID, err)
		return nil
	}
	creator.PasswordHash = ""
	b.User = creator
	return nil
}

func (s *Service) Update(ctx context.Context, id string, patch domain.BlogPatch) (domain.Blog, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Blog{}, err
	}

	patch.Apply(&b)
	if err := b.Validate(); err != nil {
		return domain.Blog{}, err
	}

	if err := s.blogRepo.Update(ctx, id, patch); err != nil {
		return domain.Blog{}, err
	}
	return b, nil
}

// Delete removes the blog. Only its creator may do so; blogs without a
// recorded creator can be deleted by any authenticated user.
func (s *Service) Delete(ctx context.Context, id string, requesterID string) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.User.ID != "" && b.User.ID != requesterID {
		return domain.ErrForbidden
	}
	return s.blogRepo.Delete(ctx, id)
}

// Like queues one like for the blog. When the worker queue is full or the
// worker has stopped the like is written through synchronously.
func (s *Service) Like(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if s.syncLikesWorker.Send(id, 1) {
		return nil
	}
	logrus.Warnf("likes queue unavailable, writing like of blog %s through", id)
	return s.blogRepo.AddLikes(ctx, id, 1)
}

func (s *Service) FetchTopLiked(ctx context.Context, limit int64) ([]domain.Blog, error) {
	if limit <= 0 || limit > domain.RankSize {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrBadParamInput, domain.RankSize)
	}
	return s.blogRepo.FetchByLikes(ctx, limit)
}

// InitBloomFilter loads every stored blog id into the bloom filter.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	ids, err := s.blogRepo.FetchIDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	logrus.Infof("loading %d blog ids into the bloom filter", len(ids))
	return s.bloomRepo.BulkAdd(ctx, ids)
}
