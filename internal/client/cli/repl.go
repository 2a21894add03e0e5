package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/client/router"
	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	redirected(d router.Decision)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Users(ctx context.Context) error

	Board(ctx context.Context) error
	List(ctx context.Context, status string) error
	AddTask(ctx context.Context) error
	EditTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error

	Reset(ctx context.Context) error
}

// commandRoutes maps each command to the screen it opens. Commands not
// listed here bypass the route guard.
var commandRoutes = map[string]string{
	"register": router.PathRegister,
	"login":    router.PathLogin,
	"whoami":   router.PathAccountSettings,
	"profile":  router.PathAccountSettings,
	"passwd":   router.PathAccountSettings,
	"users":    router.PathUsers,
	"board":    router.PathDashboard,
	"list":     router.PathTasks,
	"add":      router.PathTasks,
	"edit":     router.PathTasks,
	"delete":   router.PathTasks,

	// reset shares the guest-only gate of the login screen
	"reset": router.PathLogin,
}

const (
	guestHelp = "Available commands: register, login, reset, exit"
	userHelp  = "Available commands: board, list <status>, add, edit <id>, delete <id>, users, whoami, profile, passwd, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the taskboard CLI.
//
// It reads a line from reader, parses the first token as the command, runs
// the route guard for the command's screen and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Each command runs under a context tagged with its name for logging.
// Handler errors are printed with a label for their kind and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tb (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		cmdCtx := logging.WithCommand(ctx, cmd)

		if path, ok := commandRoutes[cmd]; ok {
			if d := router.Guard(path, a.isLoggedIn()); !d.Allow {
				a.redirected(d)
				continue
			}
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "register":
			cmdErr = a.Register(cmdCtx)

		case "login":
			cmdErr = a.Login(cmdCtx)

		case "logout":
			cmdErr = a.Logout(cmdCtx)

		case "whoami":
			cmdErr = a.WhoAmI(cmdCtx)

		case "profile":
			cmdErr = a.Profile(cmdCtx)

		case "passwd":
			cmdErr = a.ChangePassword(cmdCtx)

		case "users":
			cmdErr = a.Users(cmdCtx)

		case "board":
			cmdErr = a.Board(cmdCtx)

		case "list":
			if len(args) == 0 {
				printlnFn("Usage: list <status>")
				continue
			}
			cmdErr = a.List(cmdCtx, args[0])

		case "add":
			cmdErr = a.AddTask(cmdCtx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			cmdErr = a.EditTask(cmdCtx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			cmdErr = a.DeleteTask(cmdCtx, args[0])

		case "reset":
			cmdErr = a.Reset(cmdCtx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(errorLabel(cmdErr), cmdErr.Error())
		}
	}
}

// errorLabel picks the prefix for a failed command from the error kind.
func errorLabel(err error) string {
	switch common.KindOf(err) {
	case common.ErrValidation:
		return "Invalid input:"
	case common.ErrAuth:
		return "Access denied:"
	case common.ErrNotFound:
		return "Lookup failed:"
	}
	return "Error:"
}
