package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/bloglist/domain"
	"github.com/Guyuepp/bloglist/internal/rest/request"
	"github.com/Guyuepp/bloglist/internal/rest/response"
)

type UserHandler struct {
	Service domain.UserUsecase
	Blogs   domain.BlogUsecase
}

func NewUserHandler(svc domain.UserUsecase, blogs domain.BlogUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
		Blogs:   blogs,
	}
}

// Register creates an account
func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	u, err := h.Service.Register(c.Request.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewUserFromDomain(&u, nil))
}

// Login exchanges credentials for a token
func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthorized.Error()})
		return
	}

	s, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewSessionFromDomain(s))
}

// Fetch lists users together with the blogs they created
func (h *UserHandler) Fetch(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.Service.Fetch(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	blogs, err := h.Blogs.Fetch(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	byCreator := make(map[string][]domain.Blog)
	for _, b := range blogs {
		if b.User.ID != "" {
			byCreator[b.User.ID] = append(byCreator[b.User.ID], b)
		}
	}

	res := make([]response.User, len(users))
	for i := range users {
		res[i] = response.NewUserFromDomain(&users[i], byCreator[users[i].ID])
	}
	c.JSON(http.StatusOK, res)
}
