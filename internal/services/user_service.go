package services

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/RuthraVed/team-project-planner/internal/models"
)

type UserService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewUserService(db *gorm.DB, logger *slog.Logger) *UserService {
	return &UserService{db: db, logger: logger}
}

type CreateUserInput struct {
	Name        string
	DisplayName string
	Description string
}

// Create stores a new user and returns its id. The name must be unique.
func (s *UserService) Create(in CreateUserInput) (uint, error) {
	user := models.User{
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, &models.ConflictError{Resource: "User", Field: "name", Value: in.Name}
		}
		return 0, err
	}

	s.logger.Info("user created", slog.Uint64("user_id", uint64(user.ID)), slog.String("name", user.Name))

	return user.ID, nil
}

// FindUser implements UserFinder.
func (s *UserService) FindUser(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "UserId", ID: id}
		}
		return nil, err
	}

	return &user, nil
}

// Update mutates display name and description. The user name is immutable.
func (s *UserService) Update(id uint, displayName, description string) (*models.User, error) {
	user, err := s.FindUser(id)
	if err != nil {
		return nil, err
	}

	user.DisplayName = displayName
	user.Description = description

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// List returns users ordered by id ascending, optionally capped to limit.
func (s *UserService) List(limit int) ([]models.User, error) {
	var users []models.User

	query := s.db.Order("id asc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// Teams returns every team the user is a member of.
func (s *UserService) Teams(userID uint) ([]models.Team, error) {
	var teams []models.Team

	err := s.db.
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	return teams, nil
}
