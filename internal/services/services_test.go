package services

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/RuthraVed/team-project-planner/internal/db"
	"github.com/RuthraVed/team-project-planner/internal/models"
)

// newTestDB opens a fresh named in-memory sqlite store per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	return conn
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newServices wires the full service graph over one store.
func newServices(t *testing.T) (*UserService, *TeamService, *BoardService, *TaskService) {
	t.Helper()

	conn := newTestDB(t)
	logger := testLogger()

	users := NewUserService(conn, logger)
	teams := NewTeamService(conn, users, logger)
	boards := NewBoardService(conn, teams, &memoryWriter{}, logger)
	tasks := NewTaskService(conn, teams, logger)

	return users, teams, boards, tasks
}

// seedUsers creates n users named user-1..user-n and returns their ids.
func seedUsers(t *testing.T, users *UserService, n int) []uint {
	t.Helper()

	ids := make([]uint, 0, n)
	for i := 1; i <= n; i++ {
		id, err := users.Create(CreateUserInput{
			Name:        fmt.Sprintf("user-%s-%d", strings.ReplaceAll(t.Name(), "/", "_"), i),
			DisplayName: fmt.Sprintf("User %d", i),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	return ids
}

func requireNotFound(t *testing.T, err error, resource string) {
	t.Helper()

	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, resource, nf.Resource)
}
