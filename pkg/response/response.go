package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "smart-task-analyzer/pkg/errors"
)

// OK sends 200 JSON with data as the body, unwrapped.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends the status and detail carried by an *errors.HTTPError.
// Any other error becomes a 500 with DefaultErrorMessage.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.AbortWithStatusJSON(httpErr.StatusCode, ErrorResp{Detail: httpErr.Detail})
		return
	}
	InternalError(c)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{Detail: DefaultErrorMessage})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Detail: detail})
}
