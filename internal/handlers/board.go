package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RuthraVed/team-project-planner/internal/services"
)

type CreateBoardRequest struct {
	Name        string `json:"name" binding:"required,max=64"`
	Description string `json:"description" binding:"max=128"`
	TeamID      any    `json:"team_id" binding:"required"`
}

// BoardSummary is the slim {id, name} projection for board listings.
type BoardSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) CreateBoard(c *gin.Context) {
	var body CreateBoardRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	teamID, err := coerceID(body.TeamID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "TeamId should be numeric."})
		return
	}

	id, err := h.boards.Create(services.CreateBoardInput{
		Name:        body.Name,
		Description: body.Description,
		TeamID:      teamID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListBoards(c *gin.Context) {
	teamID, ok := h.parseID(c, "team_id", "TeamId")
	if !ok {
		return
	}

	boards, err := h.boards.ListForTeam(teamID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := make([]BoardSummary, 0, len(boards))
	for _, b := range boards {
		response = append(response, BoardSummary{ID: b.ID, Name: b.Name})
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) CloseBoard(c *gin.Context) {
	boardID, ok := h.parseID(c, "board_id", "BoardId")
	if !ok {
		return
	}

	if err := h.boards.Close(boardID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "BoardId " + strconv.FormatUint(uint64(boardID), 10) + " is now closed."})
}

func (h *Handler) ExportBoard(c *gin.Context) {
	boardID, ok := h.parseID(c, "board_id", "BoardId")
	if !ok {
		return
	}

	filename, err := h.boards.Export(boardID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"out_file": filename})
}
