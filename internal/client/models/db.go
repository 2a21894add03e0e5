// Package models defines the taskboard data model: users and sessions,
// tasks and board columns, the per-operation input forms, and the documents
// the stores persist.
package models

// AuthState is the document persisted by the auth store. The session is
// persisted too, so a login survives a restart.
type AuthState struct {
	CurrentUser *Session `json:"currentUser"`
	Users       []User   `json:"users"`
}

// TasksState is the document persisted by the task store. Statuses are
// static and not part of it.
type TasksState struct {
	Tasks []Task `json:"tasks"`
}
