package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloglist/domain"
	"github.com/Guyuepp/bloglist/internal/repository/cache"
)

const (
	KeyBlog     = "blog:%s"
	KeyBlogList = "blog:list"
	KeyTopLiked = "blog:rank:likes"

	// 逻辑过期之后物理 key 还会保留的时间
	listPhysicalGrace = 10 * time.Minute
)

type blogCache struct {
	client *redis.Client
}

var _ domain.BlogCache = (*blogCache)(nil)

func NewBlogCache(client *redis.Client) *blogCache {
	return &blogCache{
		client,
	}
}

func (c *blogCache) GetAll(ctx context.Context) ([]domain.Blog, bool, error) {
	data, err := c.client.Get(ctx, KeyBlogList).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var wrapped cache.DataWithLogicalExpire[[]domain.Blog]
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, false, err
	}
	return wrapped.Data, wrapped.IsLogicalExpired(), nil
}

func (c *blogCache) SetAll(ctx context.Context, blogs []domain.Blog, ttl time.Duration) error {
	if blogs == nil {
		blogs = []domain.Blog{}
	}
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(blogs, ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyBlogList, string(data), ttl+listPhysicalGrace).Err()
}

func (c *blogCache) GetBlog(ctx context.Context, id string) (res domain.Blog, err error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyBlog, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Blog{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Blog{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Blog{}, err
	}
	return
}

func (c *blogCache) SetBlog(ctx context.Context, b *domain.Blog, ttl time.Duration) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyBlog, b.ID), data, ttl).Err()
}

// DeleteBlog 删除博客本身以及包含它的列表和排行榜
func (c *blogCache) DeleteBlog(ctx context.Context, id string) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyBlog, id), KeyBlogList, KeyTopLiked).Err()
}

func (c *blogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, KeyBlogList, KeyTopLiked).Err()
}

func (c *blogCache) GetTopLiked(ctx context.Context, limit int64) ([]domain.Blog, error) {
	zRes, err := c.client.ZRevRangeWithScores(ctx, KeyTopLiked, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	if len(zRes) == 0 {
		return nil, domain.ErrCacheMiss
	}

	res := make([]domain.Blog, 0, len(zRes))
	for _, z := range zRes {
		id, ok := z.Member.(string)
		if !ok {
			logrus.Errorf("invalid member type in %s: %v", KeyTopLiked, z.Member)
			continue
		}
		res = append(res, domain.Blog{
			ID:    id,
			Likes: int64(z.Score),
		})
	}
	return res, nil
}

func (c *blogCache) SetTopLiked(ctx context.Context, ids []string, scores []float64, ttl time.Duration) error {
	if len(ids) != len(scores) {
		return domain.ErrBadParamInput
	}
	if len(ids) == 0 {
		return nil
	}

	zMem := make([]redis.Z, len(ids))
	for i := range zMem {
		zMem[i] = redis.Z{
			Score:  scores[i],
			Member: ids[i],
		}
	}

	pipe := c.client.Pipeline()
	pipe.Del(ctx, KeyTopLiked)
	pipe.ZAdd(ctx, KeyTopLiked, zMem...)
	pipe.Expire(ctx, KeyTopLiked, ttl)
	_, err := pipe.Exec(ctx)
	return err
}
