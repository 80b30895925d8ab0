package stats

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloglist/domain"
)

// Service serves statistics over the current snapshot of blogs.
type Service struct {
	blogRepo domain.BlogRepository
}

var _ domain.StatsUsecase = (*Service)(nil)

// NewService will create a new stats service object
func NewService(b domain.BlogRepository) *Service {
	return &Service{
		blogRepo: b,
	}
}

// snapshot loads every blog and rejects the lot if one of them breaks the
// record invariants, so a corrupt row never skews a statistic silently.
func (s *Service) snapshot(ctx context.Context) ([]domain.Blog, error) {
	blogs, err := s.blogRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	for i := range blogs {
		if err := blogs[i].Validate(); err != nil {
			logrus.Errorf("blog %s failed validation: %v", blogs[i].ID, err)
			return nil, fmt.Errorf("blog %s: %w", blogs[i].ID, err)
		}
	}
	return blogs, nil
}

func (s *Service) TotalLikes(ctx context.Context) (int64, error) {
	blogs, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return TotalLikes(blogs), nil
}

func (s *Service) FavoriteBlog(ctx context.Context) (domain.FavoriteSummary, error) {
	blogs, err := s.snapshot(ctx)
	if err != nil {
		return domain.FavoriteSummary{}, err
	}
	return FavoriteBlog(blogs), nil
}

func (s *Service) MostBlogs(ctx context.Context) (domain.AuthorBlogs, error) {
	blogs, err := s.snapshot(ctx)
	if err != nil {
		return domain.AuthorBlogs{}, err
	}
	return MostBlogs(blogs), nil
}

func (s *Service) MostLikes(ctx context.Context) (domain.AuthorLikes, error) {
	blogs, err := s.snapshot(ctx)
	if err != nil {
		return domain.AuthorLikes{}, err
	}
	return MostLikes(blogs), nil
}

// Summary computes every statistic over a single fetch.
func (s *Service) Summary(ctx context.Context) (domain.BlogStats, error) {
	blogs, err := s.snapshot(ctx)
	if err != nil {
		return domain.BlogStats{}, err
	}
	return domain.BlogStats{
		TotalLikes: TotalLikes(blogs),
		Favorite:   FavoriteBlog(blogs),
		MostBlogs:  MostBlogs(blogs),
		MostLikes:  MostLikes(blogs),
	}, nil
}

func (s *Service) Authors(ctx context.Context) ([]domain.AuthorStat, error) {
	blogs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return AuthorBreakdown(blogs), nil
}
