// Package cli provides the interactive taskboard command-line client.
//
// It wires the auth and task stores into a REPL. Every command maps to a
// screen of the app (see package router) and the route guard decides whether
// the current session may open it: guests are sent to login, logged-in users
// are kept away from login and register.
//
// Key features:
//   - Register / Login / Logout
//   - Profile and password changes
//   - Kanban board rendering, per-status lists
//   - Add / Edit / Delete tasks through the task dialog
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
