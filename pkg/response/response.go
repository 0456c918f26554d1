package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Message sends 200 with an informational {"msg": ...} body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MsgResp{Msg: msg})
}

// Error sends 400 with {"error": err}.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResp{Error: err.Error()})
}

// InternalError sends 500 with {"error": err}. The message is passed through
// unchanged so callers see what failed.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: err.Error()})
}

// Status sends an error body with an explicit status code.
func Status(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResp{Error: err.Error()})
}
