package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/bloglist/domain"
	"github.com/Guyuepp/bloglist/internal/rest/response"
)

// StatsHandler serves the aggregate statistics over all blogs.
type StatsHandler struct {
	Service domain.StatsUsecase
}

func NewStatsHandler(svc domain.StatsUsecase) *StatsHandler {
	return &StatsHandler{
		Service: svc,
	}
}

func (h *StatsHandler) Summary(c *gin.Context) {
	s, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewStats(s))
}

func (h *StatsHandler) TotalLikes(c *gin.Context) {
	total, err := h.Service.TotalLikes(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TotalLikes{TotalLikes: total})
}

func (h *StatsHandler) FavoriteBlog(c *gin.Context) {
	f, err := h.Service.FavoriteBlog(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewFavorite(f))
}

func (h *StatsHandler) MostBlogs(c *gin.Context) {
	a, err := h.Service.MostBlogs(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewAuthorBlogs(a))
}

func (h *StatsHandler) MostLikes(c *gin.Context) {
	a, err := h.Service.MostLikes(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewAuthorLikes(a))
}

func (h *StatsHandler) Authors(c *gin.Context) {
	stats, err := h.Service.Authors(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewAuthorStats(stats))
}
