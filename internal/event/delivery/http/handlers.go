package http

import (
	"github.com/gin-gonic/gin"

	"github-activity-feed/pkg/response"
)

// List godoc
// @Summary     List stored events
// @Description Returns one page of six events, newest first, with pagination metadata.
// @Tags        Events
// @Produce     json
// @Param       page query int false "1-based page number (default: 1)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.ErrorResp "Invalid page or storage failure"
// @Router      /events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processListReq: %v", err)
		response.InternalError(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}
