package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RuthraVed/team-project-planner/internal/export"
	"github.com/RuthraVed/team-project-planner/internal/models"
	"github.com/RuthraVed/team-project-planner/internal/types"
)

// memoryWriter captures export records instead of touching the filesystem.
type memoryWriter struct {
	records []export.BoardRecord
}

func (w *memoryWriter) WriteBoard(record export.BoardRecord) (string, error) {
	w.records = append(w.records, record)
	return "export_board_test.txt", nil
}

// newPlannedBoard seeds one user, one team and one OPEN board.
func newPlannedBoard(t *testing.T) (*UserService, *TeamService, *BoardService, *TaskService, uint, uint) {
	t.Helper()

	users, teams, boards, tasks := newServices(t)

	ids := seedUsers(t, users, 1)
	teamID, err := teams.Create(CreateTeamInput{Name: "team-" + t.Name(), AdminID: ids[0]})
	require.NoError(t, err)

	boardID, err := boards.Create(CreateBoardInput{Name: "board-" + t.Name(), TeamID: teamID})
	require.NoError(t, err)

	return users, teams, boards, tasks, boardID, ids[0]
}

func TestBoardCreateRequiresExistingTeam(t *testing.T) {
	_, _, boards, _ := newServices(t)

	_, err := boards.Create(CreateBoardInput{Name: "orphan", TeamID: 31337})
	requireNotFound(t, err, "TeamId")
}

func TestBoardCreateStartsOpen(t *testing.T) {
	_, _, boards, _, boardID, _ := newPlannedBoard(t)

	board, err := boards.FindBoard(boardID)
	require.NoError(t, err)
	assert.Equal(t, types.BoardStatusOpen, board.Status)
	assert.Nil(t, board.ClosedAt)
}

func TestBoardCloseBlockedByIncompleteTask(t *testing.T) {
	_, _, boards, tasks, boardID, userID := newPlannedBoard(t)

	taskID, err := tasks.Create(CreateTaskInput{Title: "pending", BoardID: boardID, AssigneeID: userID})
	require.NoError(t, err)

	err = boards.Close(boardID)
	var incomplete *models.IncompleteTaskError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, taskID, incomplete.TaskID)

	board, err := boards.FindBoard(boardID)
	require.NoError(t, err)
	assert.Equal(t, types.BoardStatusOpen, board.Status)

	// IN_PROGRESS still blocks the close.
	require.NoError(t, tasks.UpdateStatus(taskID, types.TaskStatusInProgress))
	require.ErrorAs(t, boards.Close(boardID), &incomplete)

	require.NoError(t, tasks.UpdateStatus(taskID, types.TaskStatusComplete))
	require.NoError(t, boards.Close(boardID))

	board, err = boards.FindBoard(boardID)
	require.NoError(t, err)
	assert.Equal(t, types.BoardStatusClosed, board.Status)
	require.NotNil(t, board.ClosedAt)
}

func TestBoardCloseMissingBoard(t *testing.T) {
	_, _, boards, _ := newServices(t)

	err := boards.Close(555)
	requireNotFound(t, err, "BoardId")
}

func TestBoardListForTeam(t *testing.T) {
	users, teams, boards, _ := newServices(t)

	ids := seedUsers(t, users, 1)
	teamA, err := teams.Create(CreateTeamInput{Name: "list-a", AdminID: ids[0]})
	require.NoError(t, err)
	teamB, err := teams.Create(CreateTeamInput{Name: "list-b", AdminID: ids[0]})
	require.NoError(t, err)

	first, err := boards.Create(CreateBoardInput{Name: "sprint-1", TeamID: teamA})
	require.NoError(t, err)
	second, err := boards.Create(CreateBoardInput{Name: "sprint-2", TeamID: teamA})
	require.NoError(t, err)
	_, err = boards.Create(CreateBoardInput{Name: "other", TeamID: teamB})
	require.NoError(t, err)

	owned, err := boards.ListForTeam(teamA)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, first, owned[0].ID)
	assert.Equal(t, second, owned[1].ID)
}

func TestBoardExportRecordsBoardAndTasks(t *testing.T) {
	users, teams, _, _ := newServices(t)

	ids := seedUsers(t, users, 1)
	teamID, err := teams.Create(CreateTeamInput{Name: "export-team", AdminID: ids[0]})
	require.NoError(t, err)

	writer := &memoryWriter{}
	conn := teams.db
	boards := NewBoardService(conn, teams, writer, testLogger())
	tasks := NewTaskService(conn, teams, testLogger())

	boardID, err := boards.Create(CreateBoardInput{Name: "export-me", Description: "q3", TeamID: teamID})
	require.NoError(t, err)
	_, err = tasks.Create(CreateTaskInput{Title: "ship it", BoardID: boardID, AssigneeID: ids[0]})
	require.NoError(t, err)

	filename, err := boards.Export(boardID)
	require.NoError(t, err)
	assert.Equal(t, "export_board_test.txt", filename)

	require.Len(t, writer.records, 1)
	record := writer.records[0]
	assert.Equal(t, boardID, record.ID)
	assert.Equal(t, "export-me", record.Name)
	assert.Equal(t, teamID, record.TeamID)
	require.Len(t, record.Tasks, 1)
	assert.Equal(t, "ship it", record.Tasks[0].Title)
}

func TestBoardExportMissingBoard(t *testing.T) {
	_, _, boards, _ := newServices(t)

	_, err := boards.Export(808)
	requireNotFound(t, err, "BoardId")
}
