package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RuthraVed/team-project-planner/internal/services"
)

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=64"`
	Description string `json:"description" binding:"max=128"`
	UserID      any    `json:"user_id" binding:"required"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	boardID, ok := h.parseID(c, "board_id", "BoardId")
	if !ok {
		return
	}

	var body CreateTaskRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := coerceID(body.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "UserId should be numeric."})
		return
	}

	id, err := h.tasks.Create(services.CreateTaskInput{
		Title:       body.Title,
		Description: body.Description,
		BoardID:     boardID,
		AssigneeID:  userID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) UpdateTaskStatus(c *gin.Context) {
	taskID, ok := h.parseID(c, "task_id", "TaskId")
	if !ok {
		return
	}

	var body UpdateTaskStatusRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.tasks.UpdateStatus(taskID, body.Status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "TaskId " + strconv.FormatUint(uint64(taskID), 10) + " is now " + body.Status + "."})
}
