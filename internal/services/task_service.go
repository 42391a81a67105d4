package services

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/RuthraVed/team-project-planner/internal/models"
	"github.com/RuthraVed/team-project-planner/internal/types"
)

type TaskService struct {
	db      *gorm.DB
	members MembershipChecker
	logger  *slog.Logger
}

func NewTaskService(db *gorm.DB, members MembershipChecker, logger *slog.Logger) *TaskService {
	return &TaskService{db: db, members: members, logger: logger}
}

type CreateTaskInput struct {
	Title       string
	Description string
	BoardID     uint
	AssigneeID  uint
}

// Create stores a new OPEN task under an existing board. The assignee must
// be a current member of the board's owning team.
func (s *TaskService) Create(in CreateTaskInput) (uint, error) {
	var board models.Board

	if err := s.db.First(&board, in.BoardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &models.NotFoundError{Resource: "BoardId", ID: in.BoardID}
		}
		return 0, err
	}

	member, err := s.members.IsMember(board.TeamID, in.AssigneeID)
	if err != nil {
		return 0, err
	}
	if !member {
		return 0, &models.NotMemberError{UserID: in.AssigneeID, TeamID: board.TeamID}
	}

	task := models.Task{
		Title:       in.Title,
		Description: in.Description,
		BoardID:     in.BoardID,
		AssigneeID:  in.AssigneeID,
		Status:      types.TaskStatusOpen,
	}

	if err := s.db.Create(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, &models.ConflictError{Resource: "Task", Field: "title", Value: in.Title}
		}
		return 0, err
	}

	s.logger.Info("task created",
		slog.Uint64("task_id", uint64(task.ID)),
		slog.Uint64("board_id", uint64(in.BoardID)),
		slog.Uint64("assignee_id", uint64(in.AssigneeID)),
	)

	return task.ID, nil
}

// UpdateStatus sets the task status. Any of the three known values is
// accepted from any current state; transitions are not ordered.
func (s *TaskService) UpdateStatus(taskID uint, status string) error {
	if !types.ValidTaskStatus(status) {
		return models.ErrInvalidTaskStatus
	}

	var task models.Task

	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.NotFoundError{Resource: "TaskId", ID: taskID}
		}
		return err
	}

	if err := s.db.Model(&task).Update("status", status).Error; err != nil {
		return fmt.Errorf("update task %d status: %w", taskID, err)
	}

	s.logger.Info("task status updated",
		slog.Uint64("task_id", uint64(taskID)),
		slog.String("status", status),
	)

	return nil
}
