package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RuthraVed/team-project-planner/internal/models"
	"github.com/RuthraVed/team-project-planner/internal/services"
)

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=64"`
	Description string `json:"description" binding:"max=128"`
	Admin       any    `json:"admin" binding:"required"`
}

type UpdateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=64"`
	Description string `json:"description" binding:"max=128"`
	Admin       any    `json:"admin" binding:"required"`
}

type TeamUsersRequest struct {
	Users []any `json:"users"`
}

type TeamResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Admin        uint   `json:"admin"`
	CreationTime string `json:"creation_time"`
}

// TeamMemberResponse is the slim projection for member listings.
type TeamMemberResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

func toTeamResponse(team *models.Team) TeamResponse {
	return TeamResponse{
		ID:           team.ID,
		Name:         team.Name,
		Description:  team.Description,
		Admin:        team.AdminID,
		CreationTime: team.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) CreateTeam(c *gin.Context) {
	var body CreateTeamRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	adminID, err := coerceID(body.Admin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "adminId should be numeric."})
		return
	}

	id, err := h.teams.Create(services.CreateTeamInput{
		Name:        body.Name,
		Description: body.Description,
		AdminID:     adminID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) DescribeTeam(c *gin.Context) {
	id, ok := h.parseID(c, "team_id", "TeamId")
	if !ok {
		return
	}

	team, err := h.teams.FindTeam(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTeamResponse(team))
}

func (h *Handler) UpdateTeam(c *gin.Context) {
	id, ok := h.parseID(c, "team_id", "TeamId")
	if !ok {
		return
	}

	var body UpdateTeamRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	adminID, err := coerceID(body.Admin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "adminId should be numeric."})
		return
	}

	team, err := h.teams.Update(id, body.Name, body.Description, adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTeamResponse(team))
}

func (h *Handler) ListTeams(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "limit should be numeric."})
			return
		}
		limit = parsed
	}

	teams, err := h.teams.List(limit)
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

func (h *Handler) ListTeamMembers(c *gin.Context) {
	id, ok := h.parseID(c, "team_id", "TeamId")
	if !ok {
		return
	}

	members, err := h.teams.Members(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		response = append(response, TeamMemberResponse{
			ID:          m.ID,
			Name:        m.Name,
			DisplayName: m.DisplayName,
		})
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) AddTeamMember(c *gin.Context) {
	teamID, ok := h.parseID(c, "team_id", "TeamId")
	if !ok {
		return
	}

	userID, ok := h.parseID(c, "user_id", "UserId")
	if !ok {
		return
	}

	if err := h.teams.AddMember(teamID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "UserId " + strconv.FormatUint(uint64(userID), 10) + " added to the team."})
}

// AddTeamMembers is the bulk add. At least one success yields 200; a batch
// where every id failed yields 400.
func (h *Handler) AddTeamMembers(c *gin.Context) {
	teamID, ok := h.parseID(c, "team_id", "TeamId")
	if !ok {
		return
	}

	var body TeamUsersRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := h.teams.AddMembers(teamID, tokens(body.Users))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := gin.H{}
	if len(result.Added) > 0 {
		response["Users added"] = joinTokens(result.Added)
	}
	if len(result.Failed) > 0 {
		response["Invalid users"] = joinTokens(result.Failed)
	}

	status := http.StatusOK
	if len(result.Added) == 0 {
		status = http.StatusBadRequest
	}

	c.JSON(status, response)
}

// RemoveTeamMembers is the bulk removal, mirroring the bulk add response
// shape. Naming the current admin aborts the batch via handleError.
func (h *Handler) RemoveTeamMembers(c *gin.Context) {
	teamID, ok := h.parseID(c, "team_id", "TeamId")
	if !ok {
		return
	}

	var body TeamUsersRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := h.teams.RemoveMembers(teamID, tokens(body.Users))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := gin.H{}
	if len(result.Removed) > 0 {
		response["Users removed"] = joinTokens(result.Removed)
	}
	if len(result.Failed) > 0 {
		response["Invalid users"] = joinTokens(result.Failed)
	}

	status := http.StatusOK
	if len(result.Removed) == 0 {
		status = http.StatusBadRequest
	}

	c.JSON(status, response)
}
