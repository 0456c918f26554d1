package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the read endpoint. The feed is public.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.GET("/events", h.List)
}
