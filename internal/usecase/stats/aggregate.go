package stats

import "github.com/Guyuepp/bloglist/domain"

// TotalLikes sums the likes of every blog. An empty or nil slice sums to 0.
func TotalLikes(blogs []domain.Blog) int64 {
	var total int64
	for i := range blogs {
		total += blogs[i].Likes
	}
	return total
}

// FavoriteBlog returns the title, author and likes of the most liked blog.
// When several blogs share the maximum the first one wins.
// An empty input yields the zero FavoriteSummary.
func FavoriteBlog(blogs []domain.Blog) domain.FavoriteSummary {
	if len(blogs) == 0 {
		return domain.FavoriteSummary{}
	}

	best := 0
	for i := 1; i < len(blogs); i++ {
		if blogs[i].Likes > blogs[best].Likes {
			best = i
		}
	}

	return domain.FavoriteSummary{
		Title:  blogs[best].Title,
		Author: blogs[best].Author,
		Likes:  blogs[best].Likes,
	}
}

// MostBlogs returns the author with the largest number of blogs.
// Ties go to the author who appears first in the input.
func MostBlogs(blogs []domain.Blog) domain.AuthorBlogs {
	authors, groups := groupBy(blogs, byAuthor)

	author, count, ok := argMax(authors, func(a string) int64 {
		return int64(len(groups[a]))
	})
	if !ok {
		return domain.AuthorBlogs{}
	}
	return domain.AuthorBlogs{Author: author, Blogs: count}
}

// MostLikes returns the author whose blogs collected the most likes in total.
// Ties go to the author who appears first in the input.
func MostLikes(blogs []domain.Blog) domain.AuthorLikes {
	authors, groups := groupBy(blogs, byAuthor)

	author, likes, ok := argMax(authors, func(a string) int64 {
		return TotalLikes(groups[a])
	})
	if !ok {
		return domain.AuthorLikes{}
	}
	return domain.AuthorLikes{Author: author, Likes: likes}
}

// AuthorBreakdown lists blog count and total likes for every author,
// in the order the authors first appear.
func AuthorBreakdown(blogs []domain.Blog) []domain.AuthorStat {
	authors, groups := groupBy(blogs, byAuthor)

	res := make([]domain.AuthorStat, 0, len(authors))
	for _, a := range authors {
		res = append(res, domain.AuthorStat{
			Author: a,
			Blogs:  int64(len(groups[a])),
			Likes:  TotalLikes(groups[a]),
		})
	}
	return res
}

func byAuthor(b domain.Blog) string {
	return b.Author
}

// groupBy partitions blogs by key. keys holds every distinct key once,
// in order of first appearance; each group keeps input order.
func groupBy[K comparable](blogs []domain.Blog, key func(domain.Blog) K) (keys []K, groups map[K][]domain.Blog) {
	groups = make(map[K][]domain.Blog)
	for _, b := range blogs {
		k := key(b)
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], b)
	}
	return keys, groups
}

// argMax scans keys in order and keeps the first key holding the largest metric.
func argMax[K comparable](keys []K, metric func(K) int64) (best K, bestVal int64, ok bool) {
	for _, k := range keys {
		v := metric(k)
		if !ok || v > bestVal {
			best, bestVal, ok = k, v, true
		}
	}
	return best, bestVal, ok
}
