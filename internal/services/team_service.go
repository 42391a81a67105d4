package services

import (
	"errors"
	"log/slog"
	"strconv"

	"gorm.io/gorm"

	"github.com/RuthraVed/team-project-planner/internal/models"
	"github.com/RuthraVed/team-project-planner/internal/types"
)

type TeamService struct {
	db     *gorm.DB
	users  UserFinder
	logger *slog.Logger
}

func NewTeamService(db *gorm.DB, users UserFinder, logger *slog.Logger) *TeamService {
	return &TeamService{db: db, users: users, logger: logger}
}

type CreateTeamInput struct {
	Name        string
	Description string
	AdminID     uint
}

// Create stores a new team and adds the admin as its first member.
func (s *TeamService) Create(in CreateTeamInput) (uint, error) {
	if _, err := s.users.FindUser(in.AdminID); err != nil {
		var nf *models.NotFoundError
		if errors.As(err, &nf) {
			return 0, models.ErrAdminNotUser
		}
		return 0, err
	}

	team := models.Team{
		Name:        in.Name,
		Description: in.Description,
		AdminID:     in.AdminID,
	}

	if err := s.db.Create(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, &models.ConflictError{Resource: "Team", Field: "name", Value: in.Name}
		}
		return 0, err
	}

	if err := s.AddMember(team.ID, in.AdminID); err != nil {
		return 0, err
	}

	s.logger.Info("team created",
		slog.Uint64("team_id", uint64(team.ID)),
		slog.Uint64("admin_id", uint64(in.AdminID)),
	)

	return team.ID, nil
}

// FindTeam implements TeamFinder.
func (s *TeamService) FindTeam(id uint) (*models.Team, error) {
	var team models.Team

	if err := s.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "TeamId", ID: id}
		}
		return nil, err
	}

	return &team, nil
}

// Update mutates name, description and admin. A new admin must be an
// existing user and is re-added to the membership set, which is a no-op
// when already a member.
func (s *TeamService) Update(id uint, name, description string, adminID uint) (*models.Team, error) {
	team, err := s.FindTeam(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindUser(adminID); err != nil {
		return nil, err
	}

	team.Name = name
	team.Description = description
	team.AdminID = adminID

	if err := s.db.Save(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &models.ConflictError{Resource: "Team", Field: "name", Value: name}
		}
		return nil, err
	}

	if err := s.AddMember(id, adminID); err != nil {
		return nil, err
	}

	return team, nil
}

// List returns teams ordered by id ascending, optionally capped to limit.
func (s *TeamService) List(limit int) ([]models.Team, error) {
	var teams []models.Team

	query := s.db.Order("id asc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&teams).Error; err != nil {
		return nil, err
	}

	return teams, nil
}

// Members returns the team's membership set in store order.
func (s *TeamService) Members(teamID uint) ([]models.User, error) {
	team, err := s.FindTeam(teamID)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.Model(team).Association("Members").Find(&users); err != nil {
		return nil, err
	}

	return users, nil
}

// IsMember implements MembershipChecker.
func (s *TeamService) IsMember(teamID, userID uint) (bool, error) {
	var count int64

	err := s.db.Table("team_members").
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AddMember appends the user to the team's membership set. Adding an
// existing member is a no-op success.
func (s *TeamService) AddMember(teamID, userID uint) error {
	team, err := s.FindTeam(teamID)
	if err != nil {
		return err
	}

	user, err := s.users.FindUser(userID)
	if err != nil {
		return err
	}

	member, err := s.IsMember(teamID, userID)
	if err != nil {
		return err
	}
	if member {
		return nil
	}

	return s.db.Model(team).Association("Members").Append(user)
}

// AddMembers attempts each id token in order, after checking that the
// combined member count would not exceed the team cap. Unparseable and
// unknown ids land in Failed; the rest are added.
func (s *TeamService) AddMembers(teamID uint, ids []string) (*BulkResult, error) {
	team, err := s.FindTeam(teamID)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, models.ErrNoUsers
	}

	existing := s.db.Model(team).Association("Members").Count()
	if int(existing)+len(ids) > types.MaxTeamMembers {
		remaining := types.MaxTeamMembers - int(existing)
		if remaining < 0 {
			remaining = 0
		}
		return nil, &models.CapacityError{Remaining: remaining}
	}

	result := &BulkResult{}

	for _, token := range ids {
		userID, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			result.Failed = append(result.Failed, token)
			continue
		}

		if err := s.AddMember(teamID, uint(userID)); err != nil {
			result.Failed = append(result.Failed, token)
			continue
		}

		result.Added = append(result.Added, token)
	}

	s.logger.Info("team members added",
		slog.Uint64("team_id", uint64(teamID)),
		slog.Int("added", len(result.Added)),
		slog.Int("failed", len(result.Failed)),
	)

	return result, nil
}

// RemoveMembers removes each id token in order. Hitting the current admin
// aborts the whole batch with AdminRemovalError; removals committed before
// that point stick.
func (s *TeamService) RemoveMembers(teamID uint, ids []string) (*BulkResult, error) {
	team, err := s.FindTeam(teamID)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, models.ErrNoUsers
	}

	result := &BulkResult{}

	for _, token := range ids {
		userID, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			result.Failed = append(result.Failed, token)
			continue
		}

		user, err := s.users.FindUser(uint(userID))
		if err != nil {
			result.Failed = append(result.Failed, token)
			continue
		}

		if user.ID == team.AdminID {
			return nil, &models.AdminRemovalError{AdminID: team.AdminID}
		}

		member, err := s.IsMember(teamID, user.ID)
		if err != nil {
			return nil, err
		}
		if !member {
			result.Failed = append(result.Failed, token)
			continue
		}

		if err := s.db.Model(team).Association("Members").Delete(user); err != nil {
			return nil, err
		}

		result.Removed = append(result.Removed, token)
	}

	s.logger.Info("team members removed",
		slog.Uint64("team_id", uint64(teamID)),
		slog.Int("removed", len(result.Removed)),
		slog.Int("failed", len(result.Failed)),
	)

	return result, nil
}
