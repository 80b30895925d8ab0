package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/bloglist/domain"
	"github.com/Guyuepp/bloglist/internal/repository/mysql/model"
)

type blogRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.BlogRepository = (*blogRepository)(nil)

// NewBlogRepository 创建数据库操作层
func NewBlogRepository(db *gorm.DB) *blogRepository {
	return &blogRepository{db}
}

func (m *blogRepository) Fetch(ctx context.Context) ([]domain.Blog, error) {
	var blogs []model.Blog
	err := m.DB.WithContext(ctx).Order("id").Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return toDomainBlogs(blogs), nil
}

func (m *blogRepository) GetByID(ctx context.Context, id string) (res domain.Blog, err error) {
	key, err := model.ParseID(id)
	if err != nil || key == 0 {
		return res, domain.ErrNotFound
	}

	var blog model.Blog
	err = m.DB.WithContext(ctx).First(&blog, "id = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return res, domain.ErrNotFound
	} else if err != nil {
		return res, err
	}
	return blog.ToDomain(), nil
}

func (m *blogRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Blog, error) {
	keys := parseIDs(ids)
	if len(keys) == 0 {
		return nil, nil
	}

	var blogs []model.Blog
	err := m.DB.WithContext(ctx).
		Where("id IN ?", keys).
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return toDomainBlogs(blogs), nil
}

func (m *blogRepository) Store(ctx context.Context, b *domain.Blog) error {
	blogModel := model.NewBlogFromDomain(b)
	blogModel.ID = 0
	result := m.DB.WithContext(ctx).Create(blogModel)
	if result.Error != nil {
		return result.Error
	}
	b.ID = model.FormatID(blogModel.ID)
	b.CreatedAt = blogModel.CreatedAt
	b.UpdatedAt = blogModel.UpdatedAt
	return nil
}

func (m *blogRepository) Update(ctx context.Context, id string, patch domain.BlogPatch) error {
	key, err := model.ParseID(id)
	if err != nil || key == 0 {
		return domain.ErrNotFound
	}

	// 只写入 patch 中出现的列，避免覆盖并发写入的 likes
	result := m.DB.WithContext(ctx).
		Model(&model.Blog{}).
		Where("id = ?", key).
		Updates(model.BlogPatchColumns(patch, time.Now()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *blogRepository) Delete(ctx context.Context, id string) error {
	key, err := model.ParseID(id)
	if err != nil || key == 0 {
		return domain.ErrNotFound
	}

	result := m.DB.WithContext(ctx).Delete(&model.Blog{}, key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *blogRepository) AddLikes(ctx context.Context, id string, deltaLikes int64) error {
	key, err := model.ParseID(id)
	if err != nil || key == 0 {
		return domain.ErrNotFound
	}

	result := m.DB.WithContext(ctx).
		Model(&model.Blog{}).
		Where("id = ?", key).
		Update("likes", gorm.Expr("GREATEST(likes + ?, 0)", deltaLikes))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *blogRepository) FetchByLikes(ctx context.Context, limit int64) ([]domain.Blog, error) {
	var blogs []model.Blog
	err := m.DB.WithContext(ctx).
		Order("likes desc").
		Order("id").
		Limit(int(limit)).
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return toDomainBlogs(blogs), nil
}

func (m *blogRepository) FetchIDs(ctx context.Context) ([]string, error) {
	var keys []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Blog{}).
		Order("id").
		Pluck("id", &keys).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = model.FormatID(k)
	}
	return ids, nil
}

func toDomainBlogs(blogs []model.Blog) []domain.Blog {
	res := make([]domain.Blog, len(blogs))
	for i := range blogs {
		res[i] = blogs[i].ToDomain()
	}
	return res
}

func parseIDs(ids []string) []int64 {
	keys := make([]int64, 0, len(ids))
	for _, id := range ids {
		if k, err := model.ParseID(id); err == nil && k != 0 {
			keys = append(keys, k)
		}
	}
	return keys
}
