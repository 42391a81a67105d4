package services

import (
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/RuthraVed/team-project-planner/internal/export"
	"github.com/RuthraVed/team-project-planner/internal/models"
	"github.com/RuthraVed/team-project-planner/internal/types"
)

type BoardService struct {
	db        *gorm.DB
	teams     TeamFinder
	artifacts export.Writer
	logger    *slog.Logger
}

func NewBoardService(db *gorm.DB, teams TeamFinder, artifacts export.Writer, logger *slog.Logger) *BoardService {
	return &BoardService{db: db, teams: teams, artifacts: artifacts, logger: logger}
}

type CreateBoardInput struct {
	Name        string
	Description string
	TeamID      uint
}

// Create stores a new OPEN board under an existing team.
func (s *BoardService) Create(in CreateBoardInput) (uint, error) {
	if _, err := s.teams.FindTeam(in.TeamID); err != nil {
		return 0, err
	}

	board := models.Board{
		Name:        in.Name,
		Description: in.Description,
		TeamID:      in.TeamID,
		Status:      types.BoardStatusOpen,
	}

	if err := s.db.Create(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, &models.ConflictError{Resource: "Board", Field: "name", Value: in.Name}
		}
		return 0, err
	}

	s.logger.Info("board created",
		slog.Uint64("board_id", uint64(board.ID)),
		slog.Uint64("team_id", uint64(in.TeamID)),
	)

	return board.ID, nil
}

// FindBoard returns the board with its tasks preloaded.
func (s *BoardService) FindBoard(id uint) (*models.Board, error) {
	var board models.Board

	if err := s.db.Preload("Tasks").First(&board, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "BoardId", ID: id}
		}
		return nil, err
	}

	return &board, nil
}

// ListForTeam returns every board owned by the team.
func (s *BoardService) ListForTeam(teamID uint) ([]models.Board, error) {
	var boards []models.Board

	if err := s.db.Where("team_id = ?", teamID).Order("id asc").Find(&boards).Error; err != nil {
		return nil, err
	}

	return boards, nil
}

// Close transitions the board to CLOSED, refusing while any owned task is
// not COMPLETE. The close timestamp is recorded on the first transition.
func (s *BoardService) Close(boardID uint) error {
	board, err := s.FindBoard(boardID)
	if err != nil {
		return err
	}

	for _, task := range board.Tasks {
		if task.Status != types.TaskStatusComplete {
			return &models.IncompleteTaskError{TaskID: task.ID}
		}
	}

	board.Status = types.BoardStatusClosed
	if board.ClosedAt == nil {
		now := time.Now()
		board.ClosedAt = &now
	}

	if err := s.db.Save(board).Error; err != nil {
		return err
	}

	s.logger.Info("board closed", slog.Uint64("board_id", uint64(boardID)))

	return nil
}

// Export writes the board and its tasks to the artifact writer and
// returns the generated filename.
func (s *BoardService) Export(boardID uint) (string, error) {
	board, err := s.FindBoard(boardID)
	if err != nil {
		return "", err
	}

	record := export.BoardRecord{
		ID:          board.ID,
		Name:        board.Name,
		Description: board.Description,
		TeamID:      board.TeamID,
		Status:      board.Status,
		CreatedTime: board.CreatedAt.Format(time.RFC3339),
	}
	if board.ClosedAt != nil {
		record.ClosedTime = board.ClosedAt.Format(time.RFC3339)
	}

	for _, task := range board.Tasks {
		record.Tasks = append(record.Tasks, export.TaskRecord{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			AssigneeID:  task.AssigneeID,
			Status:      task.Status,
			CreatedTime: task.CreatedAt.Format(time.RFC3339),
		})
	}

	filename, err := s.artifacts.WriteBoard(record)
	if err != nil {
		return "", err
	}

	s.logger.Info("board exported",
		slog.Uint64("board_id", uint64(boardID)),
		slog.String("out_file", filename),
	)

	return filename, nil
}
