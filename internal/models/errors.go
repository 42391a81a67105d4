package models

import (
	"errors"
	"fmt"
)

// Domain errors. Services return these instead of touching HTTP status
// codes; handlers map them to responses.
var (
	ErrAdminNotUser      = errors.New("An admin must be an existing user.")
	ErrInvalidTaskStatus = errors.New("Status can be either OPEN, IN_PROGRESS or COMPLETE.")
	ErrNoUsers           = errors.New("No users given.")
)

// NotFoundError reports a missing entity, e.g. "UserId 7 does not exist."
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d does not exist.", e.Resource, e.ID)
}

// ConflictError reports a unique-column collision surfaced by the store.
type ConflictError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists.", e.Resource, e.Field, e.Value)
}

// CapacityError rejects a bulk member add that would overshoot the team cap.
// Remaining is how many seats are still free.
type CapacityError struct {
	Remaining int
}

func (e *CapacityError) Error() string {
	if e.Remaining == 0 {
		return "Team's users capacity is full."
	}
	return fmt.Sprintf("Only %d user(s) can be added. Please try again.", e.Remaining)
}

// AdminRemovalError aborts a bulk removal that named the current admin.
type AdminRemovalError struct {
	AdminID uint
}

func (e *AdminRemovalError) Error() string {
	return fmt.Sprintf("User %d is an admin & cannot be removed. To remove, update admin first.", e.AdminID)
}

// NotMemberError rejects a task assignee outside the board's owning team.
type NotMemberError struct {
	UserID uint
	TeamID uint
}

func (e *NotMemberError) Error() string {
	return fmt.Sprintf("UserId %d does not belong to TeamId %d, which owns this board.", e.UserID, e.TeamID)
}

// IncompleteTaskError rejects closing a board that still has open work.
type IncompleteTaskError struct {
	TaskID uint
}

func (e *IncompleteTaskError) Error() string {
	return fmt.Sprintf("Cannot close this board as TaskId %d is not completed.", e.TaskID)
}
