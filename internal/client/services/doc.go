// Package services contains the two stores behind the taskboard client.
//
// AuthService owns the locally registered users and the current session:
// register, login, logout, profile and password changes. TaskService owns
// the task list and the fixed board columns.
//
// # Persistence
//
// Both stores are built from a kv.Repository. The constructor loads the
// previously saved document (an absent key means empty state) and every
// mutating call writes the document back before returning. AuthService
// saves its whole state, session included, so a login survives a restart;
// TaskService saves only the tasks. A failed write is logged and does not
// undo the in-memory change.
//
// # Errors
//
// Store failures are *common.Error values of kind common.ErrValidation,
// common.ErrAuth or common.ErrNotFound. Validation runs before any mutation,
// so a failed call leaves the store unchanged.
//
// # Concurrency
//
// Each store serializes its own calls with a mutex.
package services
