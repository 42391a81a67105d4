// Package bootstrap seeds the store from JSON data files at startup.
// Each file is optional; records are replayed through the services so the
// seed obeys the same validation as live requests.
package bootstrap

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/RuthraVed/team-project-planner/internal/services"
)

type Loader struct {
	users  *services.UserService
	teams  *services.TeamService
	boards *services.BoardService
	tasks  *services.TaskService
	logger *slog.Logger
}

func NewLoader(
	users *services.UserService,
	teams *services.TeamService,
	boards *services.BoardService,
	tasks *services.TaskService,
	logger *slog.Logger,
) *Loader {
	return &Loader{users: users, teams: teams, boards: boards, tasks: tasks, logger: logger}
}

type seedUser struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

type seedTeam struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Admin       uint   `json:"admin"`
}

type seedBoard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TeamID      uint   `json:"team_id"`
}

type seedTeamUsers struct {
	ID    uint     `json:"id"`
	Users []string `json:"users"`
}

type seedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	BoardID     uint   `json:"board_id"`
	UserID      uint   `json:"user_id"`
}

type seedTaskStatus struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// Load replays every data file found in dir, in dependency order. A record
// that fails validation is logged and skipped; a malformed file aborts.
func (l *Loader) Load(dir string) error {
	var users []seedUser
	if ok, err := readSeed(dir, "users.json", &users); err != nil {
		return err
	} else if ok {
		for _, u := range users {
			if _, err := l.users.Create(services.CreateUserInput(u)); err != nil {
				l.logger.Warn("seed user skipped", slog.String("name", u.Name), slog.String("error", err.Error()))
			}
		}
	}

	var teams []seedTeam
	if ok, err := readSeed(dir, "teams.json", &teams); err != nil {
		return err
	} else if ok {
		for _, t := range teams {
			in := services.CreateTeamInput{Name: t.Name, Description: t.Description, AdminID: t.Admin}
			if _, err := l.teams.Create(in); err != nil {
				l.logger.Warn("seed team skipped", slog.String("name", t.Name), slog.String("error", err.Error()))
			}
		}
	}

	var boards []seedBoard
	if ok, err := readSeed(dir, "boards.json", &boards); err != nil {
		return err
	} else if ok {
		for _, b := range boards {
			in := services.CreateBoardInput{Name: b.Name, Description: b.Description, TeamID: b.TeamID}
			if _, err := l.boards.Create(in); err != nil {
				l.logger.Warn("seed board skipped", slog.String("name", b.Name), slog.String("error", err.Error()))
			}
		}
	}

	var adds []seedTeamUsers
	if ok, err := readSeed(dir, "addUsers.json", &adds); err != nil {
		return err
	} else if ok {
		for _, a := range adds {
			if _, err := l.teams.AddMembers(a.ID, a.Users); err != nil {
				l.logger.Warn("seed member add skipped", slog.Uint64("team_id", uint64(a.ID)), slog.String("error", err.Error()))
			}
		}
	}

	var tasks []seedTask
	if ok, err := readSeed(dir, "tasks.json", &tasks); err != nil {
		return err
	} else if ok {
		for _, t := range tasks {
			in := services.CreateTaskInput{Title: t.Title, Description: t.Description, BoardID: t.BoardID, AssigneeID: t.UserID}
			if _, err := l.tasks.Create(in); err != nil {
				l.logger.Warn("seed task skipped", slog.String("title", t.Title), slog.String("error", err.Error()))
			}
		}
	}

	var updates []seedTaskStatus
	if ok, err := readSeed(dir, "updateTaskStatus.json", &updates); err != nil {
		return err
	} else if ok {
		for _, u := range updates {
			if err := l.tasks.UpdateStatus(u.ID, u.Status); err != nil {
				l.logger.Warn("seed status update skipped", slog.Uint64("task_id", uint64(u.ID)), slog.String("error", err.Error()))
			}
		}
	}

	var removes []seedTeamUsers
	if ok, err := readSeed(dir, "removeUsers.json", &removes); err != nil {
		return err
	} else if ok {
		for _, r := range removes {
			if _, err := l.teams.RemoveMembers(r.ID, r.Users); err != nil {
				l.logger.Warn("seed member removal skipped", slog.Uint64("team_id", uint64(r.ID)), slog.String("error", err.Error()))
			}
		}
	}

	l.logger.Info("seed data loaded", slog.String("dir", dir))

	return nil
}

// readSeed decodes dir/name into out. A missing file is not an error.
func readSeed(dir, name string, out interface{}) (bool, error) {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read seed file %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("parse seed file %s: %w", name, err)
	}

	return true, nil
}
