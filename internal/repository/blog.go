package repository

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/bloglist/domain"
)

const (
	blogTTL = 10 * time.Minute
	rankTTL = time.Hour
)

// blogRepository 协调层，协调缓存和数据库
type blogRepository struct {
	db           domain.BlogRepository
	cache        domain.BlogCache
	userRepo     domain.UserRepository
	listTTL      time.Duration
	rebuildGroup singleflight.Group
	rankGroup    singleflight.Group
	// generation is bumped by every write; snapshots read under an older
	// generation are returned but never cached
	generation atomic.Uint64
}

var _ domain.BlogRepository = (*blogRepository)(nil)

// NewBlogRepository 创建协调层repository
func NewBlogRepository(db domain.BlogRepository, cache domain.BlogCache, userRepo domain.UserRepository, listTTL time.Duration) *blogRepository {
	return &blogRepository{
		db:       db,
		cache:    cache,
		userRepo: userRepo,
		listTTL:  listTTL,
	}
}

// Fetch 获取全部博客，使用逻辑过期策略
func (r *blogRepository) Fetch(ctx context.Context) ([]domain.Blog, error) {
	blogs, expired, err := r.cache.GetAll(ctx)
	if err == nil {
		if expired {
			go r.rebuildList(context.Background())
		}
		return blogs, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to get blog list from cache: %v", err)
	}

	result, err, _ := r.rebuildGroup.Do("list", func() (any, error) {
		return r.loadList(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Blog), nil
}

func (r *blogRepository) loadList(ctx context.Context) ([]domain.Blog, error) {
	gen := r.generation.Load()
	blogs, err := r.db.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	blogs, err = r.fillUserDetails(ctx, blogs)
	if err != nil {
		return nil, err
	}

	if r.generation.Load() != gen {
		logrus.Debug("blog list changed while loading, skip caching")
		return blogs, nil
	}
	if err := r.cache.SetAll(ctx, blogs, r.listTTL); err != nil {
		logrus.Warnf("failed to set blog list cache: %v", err)
	}
	return blogs, nil
}

// rebuildList 异步重建列表缓存
func (r *blogRepository) rebuildList(ctx context.Context) {
	_, err, _ := r.rebuildGroup.Do("list", func() (any, error) {
		return r.loadList(ctx)
	})
	if err != nil {
		logrus.Errorf("rebuildList failed: %v", err)
	}
}

// GetByID 根据ID获取博客，缓存未命中时用 singleflight 避免缓存击穿
func (r *blogRepository) GetByID(ctx context.Context, id string) (domain.Blog, error) {
	blog, err := r.cache.GetBlog(ctx, id)
	if err == nil {
		return blog, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to get blog %s from cache: %v", id, err)
	}

	result, err, _ := r.rebuildGroup.Do("blog:"+id, func() (any, error) {
		b, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		filled, err := r.fillUserDetails(ctx, []domain.Blog{b})
		if err != nil {
			return nil, err
		}
		b = filled[0]

		if err := r.cache.SetBlog(ctx, &b, blogTTL); err != nil {
			logrus.Warnf("failed to set blog %s cache: %v", id, err)
		}
		return b, nil
	})
	if err != nil {
		return domain.Blog{}, err
	}
	return result.(domain.Blog), nil
}

// GetByIDs 批量获取博客
func (r *blogRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Blog, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	blogs, err := r.db.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.fillUserDetails(ctx, blogs)
}

func (r *blogRepository) Store(ctx context.Context, b *domain.Blog) error {
	if err := r.db.Store(ctx, b); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *blogRepository) Update(ctx context.Context, id string, patch domain.BlogPatch) error {
	if err := r.db.Update(ctx, id, patch); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *blogRepository) AddLikes(ctx context.Context, id string, deltaLikes int64) error {
	if err := r.db.AddLikes(ctx, id, deltaLikes); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

// FetchByLikes 获取点赞排行榜，优先读 redis 的有序集合
func (r *blogRepository) FetchByLikes(ctx context.Context, limit int64) ([]domain.Blog, error) {
	ranked, err := r.cache.GetTopLiked(ctx, limit)
	if err == nil {
		return r.fillRankBlogs(ctx, ranked)
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to get likes ranking from cache: %v", err)
	}

	result, err, _ := r.rankGroup.Do("likes", func() (any, error) {
		return r.buildRank(ctx)
	})
	if err != nil {
		return nil, err
	}

	blogs := result.([]domain.Blog)
	return blogs[:min(int64(len(blogs)), limit)], nil
}

func (r *blogRepository) FetchIDs(ctx context.Context) ([]string, error) {
	return r.db.FetchIDs(ctx)
}

// buildRank 从数据库构建排行榜并写回缓存
func (r *blogRepository) buildRank(ctx context.Context) ([]domain.Blog, error) {
	gen := r.generation.Load()
	blogs, err := r.db.FetchByLikes(ctx, domain.RankSize)
	if err != nil {
		return nil, err
	}

	blogs, err = r.fillUserDetails(ctx, blogs)
	if err != nil {
		return nil, err
	}

	if r.generation.Load() != gen {
		logrus.Debug("likes ranking changed while loading, skip caching")
		return blogs, nil
	}

	ids := make([]string, len(blogs))
	scores := make([]float64, len(blogs))
	for i, b := range blogs {
		ids[i] = b.ID
		scores[i] = float64(b.Likes)
	}
	if err := r.cache.SetTopLiked(ctx, ids, scores, rankTTL); err != nil {
		logrus.Warnf("failed to set likes ranking cache: %v", err)
	}

	return blogs, nil
}

// fillRankBlogs 填充排行榜博客的完整信息，保持排名顺序
func (r *blogRepository) fillRankBlogs(ctx context.Context, ranked []domain.Blog) ([]domain.Blog, error) {
	ids := make([]string, len(ranked))
	for i, b := range ranked {
		ids[i] = b.ID
	}

	blogs, err := r.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	blogMap := make(map[string]domain.Blog, len(blogs))
	for _, b := range blogs {
		blogMap[b.ID] = b
	}

	res := make([]domain.Blog, 0, len(ranked))
	for _, rb := range ranked {
		// 已经被删除的博客直接跳过
		if full, ok := blogMap[rb.ID]; ok {
			res = append(res, full)
		}
	}
	return res, nil
}

// fillUserDetails 批量填充创建者信息
func (r *blogRepository) fillUserDetails(ctx context.Context, blogs []domain.Blog) ([]domain.Blog, error) {
	if len(blogs) == 0 {
		return blogs, nil
	}

	// 收集所有不重复的UserID
	userIDs := make([]string, 0, len(blogs))
	existMap := make(map[string]bool)
	for _, item := range blogs {
		if item.User.ID != "" && !existMap[item.User.ID] {
			userIDs = append(userIDs, item.User.ID)
			existMap[item.User.ID] = true
		}
	}
	if len(userIDs) == 0 {
		return blogs, nil
	}

	users, err := r.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	userMap := make(map[string]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	for i := range blogs {
		if u, ok := userMap[blogs[i].User.ID]; ok {
			u.PasswordHash = ""
			blogs[i].User = u
		}
	}

	return blogs, nil
}

func (r *blogRepository) invalidate(ctx context.Context) {
	r.generation.Add(1)
	if err := r.cache.Invalidate(ctx); err != nil {
		logrus.Warnf("failed to invalidate blog cache: %v", err)
	}
}

func (r *blogRepository) evict(ctx context.Context, id string) {
	r.generation.Add(1)
	if err := r.cache.DeleteBlog(ctx, id); err != nil {
		logrus.Warnf("failed to evict blog %s from cache: %v", id, err)
	}
}
