package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RuthraVed/team-project-planner/internal/models"
	"github.com/RuthraVed/team-project-planner/internal/services"
)

type CreateUserRequest struct {
	Name        string `json:"name" binding:"required,max=64"`
	DisplayName string `json:"display_name" binding:"required,max=64"`
	Description string `json:"description" binding:"max=128"`
}

type UpdateUserRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=64"`
	Description string `json:"description" binding:"max=128"`
}

type UserResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		DisplayName:  user.DisplayName,
		Description:  user.Description,
		CreationTime: user.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) CreateUser(c *gin.Context) {
	var body CreateUserRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id, err := h.users.Create(services.CreateUserInput{
		Name:        body.Name,
		DisplayName: body.DisplayName,
		Description: body.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) DescribeUser(c *gin.Context) {
	id, ok := h.parseID(c, "user_id", "userId")
	if !ok {
		return
	}

	user, err := h.users.FindUser(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := h.parseID(c, "user_id", "userId")
	if !ok {
		return
	}

	var body UpdateUserRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.users.Update(id, body.DisplayName, body.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) ListUsers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "limit should be numeric."})
			return
		}
		limit = parsed
	}

	users, err := h.users.List(limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) UserTeams(c *gin.Context) {
	id, ok := h.parseID(c, "user_id", "userId")
	if !ok {
		return
	}

	teams, err := h.users.Teams(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		response = append(response, toTeamResponse(&teams[i]))
	}

	c.JSON(http.StatusOK, response)
}
