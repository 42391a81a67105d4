// Package export writes board report artifacts. Boards reference it
// through the Writer interface so tests can capture records in memory.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type TaskRecord struct {
	ID          uint   `json:"taskId"`
	Title       string `json:"taskTitle"`
	Description string `json:"taskDescription"`
	AssigneeID  uint   `json:"taskUserId"`
	Status      string `json:"taskStatus"`
	CreatedTime string `json:"taskCreated"`
}

type BoardRecord struct {
	ID          uint         `json:"boardId"`
	Name        string       `json:"boardName"`
	Description string       `json:"boardDescription"`
	TeamID      uint         `json:"boardTeamId"`
	Status      string       `json:"boardStatus"`
	CreatedTime string       `json:"boardCreatedTime"`
	ClosedTime  string       `json:"boardClosedTime,omitempty"`
	Tasks       []TaskRecord `json:"tasks"`
}

// Writer persists a board record somewhere and returns its name.
type Writer interface {
	WriteBoard(record BoardRecord) (string, error)
}

// FileWriter writes board records as indented JSON text files into Dir,
// one file per export, named by the export timestamp.
type FileWriter struct {
	Dir string
}

func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{Dir: dir}
}

func (w *FileWriter) WriteBoard(record BoardRecord) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "      ")
	if err != nil {
		return "", fmt.Errorf("marshal board record: %w", err)
	}

	name := "export_board_" + time.Now().Format("2006_01_02-03.04.05_PM") + ".txt"

	if err := os.WriteFile(filepath.Join(w.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write board export: %w", err)
	}

	return name, nil
}
