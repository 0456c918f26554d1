package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// processListReq reads the optional 1-based page query parameter.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	req := listReq{Page: 1}

	raw, ok := c.GetQuery("page")
	if !ok {
		return req, nil
	}

	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return req, fmt.Errorf("invalid page %q: %w", raw, err)
	}
	req.Page = page
	return req, req.validate()
}
