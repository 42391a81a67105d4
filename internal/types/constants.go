package types

import (
	"os"
	"strings"
)

// Board lifecycle.
const (
	BoardStatusOpen   = "OPEN"
	BoardStatusClosed = "CLOSED"
)

// Task lifecycle. Transitions between the three values are unordered.
const (
	TaskStatusOpen       = "OPEN"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusComplete   = "COMPLETE"
)

// MaxTeamMembers caps total membership per team, admin included.
const MaxTeamMembers = 10

// TaskStatuses lists every accepted task status value.
var TaskStatuses = []string{TaskStatusOpen, TaskStatusInProgress, TaskStatusComplete}

// ValidTaskStatus reports whether s is one of the accepted task statuses.
func ValidTaskStatus(s string) bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
