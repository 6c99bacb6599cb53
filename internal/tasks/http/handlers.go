package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tasktrack/tracker-backend/internal/api/http/respond"
	"github.com/tasktrack/tracker-backend/internal/tasks/domain"
)

const notFoundMsg = "Task not found"

func (h *Handler) create(c *gin.Context) {
	var req domain.TaskInput
	if !respond.BindJSON(c, &req) {
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, "create task", notFoundMsg, "Failed to create task", err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) list(c *gin.Context) {
	f := domain.Filter{UserName: c.Query("user_name")}

	if raw := strings.TrimSpace(c.Query("project_id")); raw != "" {
		pid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id"})
			return
		}
		f.ProjectID = &pid
	}

	items, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respond.Error(c, "list tasks", notFoundMsg, "Failed to fetch tasks", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) update(c *gin.Context) {
	// A non-numeric id cannot name a row.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}

	var req domain.TaskInput
	if !respond.BindJSON(c, &req) {
		return
	}

	t, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respond.Error(c, "update task", notFoundMsg, "Failed to update task", err)
		return
	}

	c.JSON(http.StatusOK, t)
}
