package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/RuthraVed/team-project-planner/internal/handlers"
	"github.com/RuthraVed/team-project-planner/internal/middleware"
	"github.com/RuthraVed/team-project-planner/internal/types"
)

func New(h *handlers.Handler, logger *slog.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		users := api.Group("/users")
		{
			users.POST("", h.CreateUser)
			users.GET("", h.ListUsers)
			users.GET("/:user_id", h.DescribeUser)
			users.PATCH("/:user_id", h.UpdateUser)
			users.GET("/:user_id/teams", h.UserTeams)
		}

		teams := api.Group("/teams")
		{
			teams.POST("", h.CreateTeam)
			teams.GET("", h.ListTeams)
			teams.GET("/:team_id", h.DescribeTeam)
			teams.PATCH("/:team_id", h.UpdateTeam)
			teams.GET("/:team_id/members", h.ListTeamMembers)
			teams.POST("/:team_id/members", h.AddTeamMembers)
			teams.PUT("/:team_id/members/:user_id", h.AddTeamMember)
			teams.DELETE("/:team_id/members", h.RemoveTeamMembers)
			teams.GET("/:team_id/boards", h.ListBoards)
		}

		boards := api.Group("/boards")
		{
			boards.POST("", h.CreateBoard)
			boards.POST("/:board_id/close", h.CloseBoard)
			boards.POST("/:board_id/export", h.ExportBoard)
			boards.POST("/:board_id/tasks", h.CreateTask)
		}

		api.PATCH("/tasks/:task_id/status", h.UpdateTaskStatus)
	}

	return r
}
