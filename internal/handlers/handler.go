package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RuthraVed/team-project-planner/internal/models"
	"github.com/RuthraVed/team-project-planner/internal/services"
)

// Handler exposes the planner services over gin. Everything it needs is
// injected at construction.
type Handler struct {
	users  *services.UserService
	teams  *services.TeamService
	boards *services.BoardService
	tasks  *services.TaskService
	logger *slog.Logger
}

func New(
	users *services.UserService,
	teams *services.TeamService,
	boards *services.BoardService,
	tasks *services.TaskService,
	logger *slog.Logger,
) *Handler {
	return &Handler{users: users, teams: teams, boards: boards, tasks: tasks, logger: logger}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleError maps domain errors onto the response contract: 404 for
// missing entities, 409 for unique-name collisions, 405 for a close
// blocked by incomplete tasks, 400 for everything rule-shaped.
func (h *Handler) handleError(c *gin.Context, err error) {
	var (
		notFound   *models.NotFoundError
		conflict   *models.ConflictError
		incomplete *models.IncompleteTaskError
		capacity   *models.CapacityError
		notMember  *models.NotMemberError
		adminStuck *models.AdminRemovalError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"message": conflict.Error()})
	case errors.As(err, &incomplete):
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": incomplete.Error()})
	case errors.As(err, &capacity):
		c.JSON(http.StatusBadRequest, gin.H{"message": capacity.Error()})
	case errors.As(err, &notMember):
		c.JSON(http.StatusBadRequest, gin.H{"error": notMember.Error()})
	case errors.As(err, &adminStuck):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": adminStuck.Error(),
			"extra": "Other users, if valid may have been removed.",
		})
	case errors.Is(err, models.ErrAdminNotUser),
		errors.Is(err, models.ErrInvalidTaskStatus),
		errors.Is(err, models.ErrNoUsers):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		h.logger.Error("request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseID reads a numeric path parameter, answering 400 with a
// field-specific message when it does not parse.
func (h *Handler) parseID(c *gin.Context, param, field string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": field + " should be numeric."})
		return 0, false
	}
	return uint(id), true
}

// coerceID accepts an identifier sent as either a JSON number or a
// numeric string, matching the original flat key/value payloads.
func coerceID(value any) (uint, error) {
	switch v := value.(type) {
	case float64:
		if v < 0 || v != float64(uint(v)) {
			return 0, fmt.Errorf("not a whole number: %v", v)
		}
		return uint(v), nil
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return uint(id), nil
	default:
		return 0, fmt.Errorf("unsupported id type %T", value)
	}
}

// tokens renders a bulk users list as string tokens, preserving the
// caller's spelling so failures can echo the original input.
func tokens(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		switch t := v.(type) {
		case string:
			out[i] = t
		case float64:
			out[i] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			out[i] = fmt.Sprint(t)
		}
	}
	return out
}

// joinTokens comma-joins a token list for the bulk response bodies.
func joinTokens(ts []string) string {
	joined := ""
	for i, t := range ts {
		if i > 0 {
			joined += ", "
		}
		joined += t
	}
	return joined
}
