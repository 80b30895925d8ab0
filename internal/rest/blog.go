package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloglist/domain"
	"github.com/Guyuepp/bloglist/internal/rest/middleware"
	"github.com/Guyuepp/bloglist/internal/rest/request"
	"github.com/Guyuepp/bloglist/internal/rest/response"
)

const DefaultRankLimit = 10

// BlogHandler  represent the httphandler for blog
type BlogHandler struct {
	Service domain.BlogUsecase
}

func NewBlogHandler(svc domain.BlogUsecase) *BlogHandler {
	return &BlogHandler{
		Service: svc,
	}
}

// Fetch lists every blog
func (h *BlogHandler) Fetch(c *gin.Context) {
	blogs, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewBlogsFromDomain(blogs))
}

// GetByID will get blog by given id
func (h *BlogHandler) GetByID(c *gin.Context) {
	b, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewBlogFromDomain(&b))
}

// Store will store the blog by given request body
func (h *BlogHandler) Store(c *gin.Context) {
	var req request.Blog
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	b := req.ToDomain()
	b.User.ID = c.GetString(middleware.ContextUserID)

	if err := h.Service.Store(c.Request.Context(), &b); err != nil {
		abortWithError(c, invalidBlog(err))
		return
	}
	c.JSON(http.StatusCreated, response.NewBlogFromDomain(&b))
}

// Update applies a partial update
func (h *BlogHandler) Update(c *gin.Context) {
	var req request.BlogPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	b, err := h.Service.Update(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		abortWithError(c, invalidBlog(err))
		return
	}
	c.JSON(http.StatusOK, response.NewBlogFromDomain(&b))
}

// Delete will delete the blog by given param
func (h *BlogHandler) Delete(c *gin.Context) {
	err := h.Service.Delete(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Like queues one like, the count is updated asynchronously
func (h *BlogHandler) Like(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Like(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": id})
}

// FetchRank returns the most liked blogs
func (h *BlogHandler) FetchRank(c *gin.Context) {
	limit := int64(DefaultRankLimit)
	if s := c.Query("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 1 || n > domain.RankSize {
			logrus.Warnf("Invalid param 'limit': %q", s)
		} else {
			limit = n
		}
	}

	blogs, err := h.Service.FetchTopLiked(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewBlogsFromDomain(blogs))
}

// invalidBlog turns a rejected request body into a client error.
func invalidBlog(err error) error {
	if errors.Is(err, domain.ErrMalformedBlog) {
		return fmt.Errorf("%w: %w", domain.ErrBadParamInput, err)
	}
	return err
}
