package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
)

// Result is the body of write endpoints and of every error.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err as {success:false, message}. The cause of persistence
// and internal errors is attached to the context for the logger only.
func Fail(c *gin.Context, err error) {
	if StatusOf(err) >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(StatusOf(err), Result{Success: false, Message: apperr.Message(err)})
}

// Abort is Fail followed by aborting the handler chain.
func Abort(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}

func OK(c *gin.Context, status int, msg string) {
	c.JSON(status, Result{Success: true, Message: msg})
}

// BadJSON reports a body that could not be decoded.
func BadJSON(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, Result{Success: false, Message: "invalid json"})
}
