package httperr

import (
	"net/http"

	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithKind answers with the status and message of the error's category.
// Unexpected errors never leak their text.
func AbortWithKind(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	msg := errs.Message(err)
	if kind == errs.KindUnexpected {
		msg = "Internal server error"
	}
	AbortWithError(c, StatusOf(kind), err, msg, nil)
}

func NewResponse(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Code = codeOf(status)
	resp.Error.Message = msg
	return resp
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

const codeRateLimited = "RATE_LIMITED"

func codeOf(status int) string {
	switch status {
	case http.StatusNotFound:
		return string(errs.KindNotFound)
	case http.StatusBadRequest:
		return string(errs.KindValidation)
	case http.StatusConflict:
		return string(errs.KindConflict)
	case http.StatusTooManyRequests:
		return codeRateLimited
	default:
		return string(errs.KindUnexpected)
	}
}
