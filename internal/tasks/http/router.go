package http

import "github.com/gin-gonic/gin"

// Register attaches task routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.PUT("/:id", h.update)
}
