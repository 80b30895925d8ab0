package rest

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups every handler served under /api.
type Handlers struct {
	Blog   *BlogHandler
	User   *UserHandler
	Stats  *StatsHandler
	Health *HealthHandler
}

// Register mounts the routes on r. authMW guards the write endpoints that need a creator.
func (h Handlers) Register(r gin.IRouter, authMW gin.HandlerFunc) {
	r.GET("/healthz", h.Health.Health)

	api := r.Group("/api")
	{
		api.GET("/blogs", h.Blog.Fetch)
		api.GET("/blogs/ranks", h.Blog.FetchRank)
		api.GET("/blogs/:id", h.Blog.GetByID)
		api.PUT("/blogs/:id", h.Blog.Update)

		api.POST("/users", h.User.Register)
		api.GET("/users", h.User.Fetch)
		api.POST("/login", h.User.Login)

		api.GET("/stats", h.Stats.Summary)
		api.GET("/stats/total-likes", h.Stats.TotalLikes)
		api.GET("/stats/favorite", h.Stats.FavoriteBlog)
		api.GET("/stats/most-blogs", h.Stats.MostBlogs)
		api.GET("/stats/most-likes", h.Stats.MostLikes)
		api.GET("/stats/authors", h.Stats.Authors)
	}

	authorized := api.Group("/")
	authorized.Use(authMW)
	{
		authorized.POST("/blogs", h.Blog.Store)
		authorized.DELETE("/blogs/:id", h.Blog.Delete)
		authorized.POST("/blogs/:id/like", h.Blog.Like)
	}
}
