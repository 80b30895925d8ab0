package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloglist/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"error"`
}

// getStatusCode will get the code of the error from the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := getStatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = domain.ErrInternalServerError.Error()
	}
	c.AbortWithStatusJSON(status, ResponseError{Message: msg})
}

// bindingError renders validator failures field by field.
func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ResponseError{Message: "malformed request body"})
		return
	}

	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs[i] = fmt.Sprintf("`%s` is required", field)
		case "min":
			msgs[i] = fmt.Sprintf("`%s` must be at least %s", field, fe.Param())
		default:
			msgs[i] = fmt.Sprintf("`%s` failed on %s", field, fe.Tag())
		}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ResponseError{Message: strings.Join(msgs, ", ")})
}
