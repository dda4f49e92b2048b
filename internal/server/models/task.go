package models

import "time"

// Task is a single to-do item owned by exactly one user.
type Task struct {
	ID          int64
	Title       string
	Description string
	Deadline    time.Time
	Completed   bool
	OwnerID     int64
}

// TaskUpdate describes a partial update. A nil field is left untouched,
// which keeps "absent" distinguishable from "set to the zero value".
type TaskUpdate struct {
	Title       *string
	Description *string
	Deadline    *time.Time
	Completed   *bool
}

// IsEmpty reports whether the update carries no fields at all.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Deadline == nil && u.Completed == nil
}
