package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/bloglist/domain"
)

func blog(id, title, author string, likes int64) domain.Blog {
	return domain.Blog{ID: id, Title: title, Author: author, URL: "https://example.com/" + id, Likes: likes}
}

var (
	listWithOneBlog = []domain.Blog{
		blog("5a422aa71b54a676234d17f8", "Go To Statement Considered Harmful", "Edsger W. Dijkstra", 5),
	}

	listWithBlogs = []domain.Blog{
		blog("5a422aa71b54a676234d17f8", "Go To Statement Considered Harmful", "Edsger W. Dijkstra", 2),
		blog("5a422aa71b54a676234f219a", "React patterns", "Michael Chan", 3),
		blog("5a422aa71b54a676234a31d7", "First class tests", "Robert C. Martin", 10),
	}

	listWithTiedBlogs = []domain.Blog{
		blog("5a422aa71b54a676234d17f8", "Go To Statement Considered Harmful", "Edsger W. Dijkstra", 2),
		blog("5a422aa71b54a676234f219a", "React patterns", "Michael Chan", 10),
		blog("5a422ba71b54a676234d17fb", "TDD harms architecture", "Robert C. Martin", 0),
		blog("5a422aa71b54a676234a31d7", "First class tests", "Robert C. Martin", 10),
	}
)

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []domain.Blog
		want  int64
	}{
		{name: "nil list", blogs: nil, want: 0},
		{name: "empty list", blogs: []domain.Blog{}, want: 0},
		{name: "one blog", blogs: listWithOneBlog, want: 5},
		{name: "bigger list", blogs: listWithBlogs, want: 15},
		{name: "tied list", blogs: listWithTiedBlogs, want: 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalLikes(tt.blogs))
		})
	}
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		res := FavoriteBlog([]domain.Blog{})
		assert.True(t, res.IsZero())
		assert.Equal(t, domain.FavoriteSummary{}, FavoriteBlog(nil))
	})

	t.Run("single blog", func(t *testing.T) {
		assert.Equal(t, domain.FavoriteSummary{
			Title:  "Go To Statement Considered Harmful",
			Author: "Edsger W. Dijkstra",
			Likes:  5,
		}, FavoriteBlog(listWithOneBlog))
	})

	t.Run("unique maximum regardless of position", func(t *testing.T) {
		want := domain.FavoriteSummary{Title: "First class tests", Author: "Robert C. Martin", Likes: 10}
		assert.Equal(t, want, FavoriteBlog(listWithBlogs))

		reversed := []domain.Blog{listWithBlogs[2], listWithBlogs[1], listWithBlogs[0]}
		assert.Equal(t, want, FavoriteBlog(reversed))

		middle := []domain.Blog{listWithBlogs[0], listWithBlogs[2], listWithBlogs[1]}
		assert.Equal(t, want, FavoriteBlog(middle))
	})

	t.Run("first of several maxima wins", func(t *testing.T) {
		assert.Equal(t, domain.FavoriteSummary{
			Title:  "React patterns",
			Author: "Michael Chan",
			Likes:  10,
		}, FavoriteBlog(listWithTiedBlogs))
	})

	t.Run("all zero likes picks the first", func(t *testing.T) {
		blogs := []domain.Blog{blog("1", "a", "A", 0), blog("2", "b", "B", 0)}
		assert.Equal(t, domain.FavoriteSummary{Title: "a", Author: "A"}, FavoriteBlog(blogs))
	})
}

func TestMostBlogs(t *testing.T) {
	tests := []struct {
		name  string
		blogs []domain.Blog
		want  domain.AuthorBlogs
	}{
		{
			name:  "empty list",
			blogs: []domain.Blog{},
			want:  domain.AuthorBlogs{},
		},
		{
			name:  "two of three",
			blogs: []domain.Blog{{Author: "A"}, {Author: "B"}, {Author: "A"}},
			want:  domain.AuthorBlogs{Author: "A", Blogs: 2},
		},
		{
			name: "likes do not matter",
			blogs: []domain.Blog{
				{Author: "A", Likes: 2}, {Author: "B", Likes: 10}, {Author: "A", Likes: 0}, {Author: "A", Likes: 10},
			},
			want: domain.AuthorBlogs{Author: "A", Blogs: 3},
		},
		{
			name:  "reference fixture",
			blogs: listWithTiedBlogs,
			want:  domain.AuthorBlogs{Author: "Robert C. Martin", Blogs: 2},
		},
		{
			name:  "tie goes to first appearance",
			blogs: []domain.Blog{{Author: "B"}, {Author: "A"}, {Author: "A"}, {Author: "B"}},
			want:  domain.AuthorBlogs{Author: "B", Blogs: 2},
		},
		{
			name:  "grouping is exact match",
			blogs: []domain.Blog{{Author: "a"}, {Author: "A"}, {Author: "A "}, {Author: "A"}},
			want:  domain.AuthorBlogs{Author: "A", Blogs: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MostBlogs(tt.blogs))
		})
	}
}

func TestMostLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []domain.Blog
		want  domain.AuthorLikes
	}{
		{
			name:  "empty list",
			blogs: nil,
			want:  domain.AuthorLikes{},
		},
		{
			name: "summed per author",
			blogs: []domain.Blog{
				{Author: "A", Likes: 2}, {Author: "B", Likes: 10}, {Author: "A", Likes: 0}, {Author: "A", Likes: 10},
			},
			want: domain.AuthorLikes{Author: "A", Likes: 12},
		},
		{
			name:  "reference fixture, tie goes to first appearance",
			blogs: listWithTiedBlogs,
			want:  domain.AuthorLikes{Author: "Michael Chan", Likes: 10},
		},
		{
			name:  "all authors without likes",
			blogs: []domain.Blog{{Author: "A"}, {Author: "B"}},
			want:  domain.AuthorLikes{Author: "A", Likes: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MostLikes(tt.blogs))
		})
	}
}

func TestAuthorBreakdown(t *testing.T) {
	assert.Empty(t, AuthorBreakdown(nil))

	assert.Equal(t, []domain.AuthorStat{
		{Author: "Edsger W. Dijkstra", Blogs: 1, Likes: 2},
		{Author: "Michael Chan", Blogs: 1, Likes: 10},
		{Author: "Robert C. Martin", Blogs: 2, Likes: 10},
	}, AuthorBreakdown(listWithTiedBlogs))
}

func TestAggregationIsPure(t *testing.T) {
	input := make([]domain.Blog, len(listWithTiedBlogs))
	copy(input, listWithTiedBlogs)

	assert.Equal(t, TotalLikes(input), TotalLikes(input))
	assert.Equal(t, FavoriteBlog(input), FavoriteBlog(input))
	assert.Equal(t, MostBlogs(input), MostBlogs(input))
	assert.Equal(t, MostLikes(input), MostLikes(input))
	assert.Equal(t, listWithTiedBlogs, input)
}

func TestGroupByKeepsFirstAppearanceOrder(t *testing.T) {
	keys, groups := groupBy([]domain.Blog{
		{ID: "1", Author: "C"}, {ID: "2", Author: "A"}, {ID: "3", Author: "C"}, {ID: "4", Author: "B"},
	}, byAuthor)

	assert.Equal(t, []string{"C", "A", "B"}, keys)
	assert.Len(t, groups["C"], 2)
	assert.Equal(t, "1", groups["C"][0].ID)
	assert.Equal(t, "3", groups["C"][1].ID)
}
