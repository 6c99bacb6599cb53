package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasktrack/tracker-backend/internal/api/http/respond"
	"github.com/tasktrack/tracker-backend/internal/projects/domain"
)

func (h *Handler) create(c *gin.Context) {
	var req domain.CreateProjectInput
	if !respond.BindJSON(c, &req) {
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, "create project", "", "Failed to create project", err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, "list projects", "", "Failed to fetch projects", err)
		return
	}
	c.JSON(http.StatusOK, items)
}
