package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	NonFieldErrors []string `json:"non_field_errors,omitempty"`
	Detail         any      `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// AbortWithNonFieldErrors reports failures that belong to the request as a whole rather than
// to one input, such as a rejected booking slot.
func AbortWithNonFieldErrors(c *gin.Context, status int, err error, msg string, messages ...string) {
	if err == nil {
		panic("AbortWithNonFieldErrors: err cannot be nil")
	}

	resp := Response{Status: status, NonFieldErrors: messages}
	resp.Error.Message = msg

	abort(c, err, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
