package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/taskboard/internal/client/repositories/kv"
	"github.com/dmitrijs2005/taskboard/internal/client/router"
	"github.com/dmitrijs2005/taskboard/internal/client/services"
	"github.com/dmitrijs2005/taskboard/internal/client/ui"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

type App struct {
	repo        kv.Repository
	authService services.AuthService
	taskService services.TaskService
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer

	// loginPath is the login route the guard last sent the user to; it
	// carries the screen to continue to after a successful login.
	loginPath string
	dialog    ui.TaskDialog
}

// NewApp loads both stores from repo and returns an App reading commands
// from in and writing to out.
func NewApp(ctx context.Context, repo kv.Repository, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	a := &App{
		repo:   repo,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
	if err := a.load(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// load (re)creates both stores from the repository.
func (a *App) load(ctx context.Context) error {
	as, err := services.NewAuthService(ctx, a.repo, services.WithLogger(a.log))
	if err != nil {
		return fmt.Errorf("error loading auth store: %w", err)
	}
	ts, err := services.NewTaskService(ctx, a.repo, services.WithLogger(a.log))
	if err != nil {
		return fmt.Errorf("error loading tasks store: %w", err)
	}
	a.authService, a.taskService = as, ts
	a.loginPath = ""
	return nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.log.Debug(ctx, "repl started")
	a.println("Welcome to Taskboard (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	a.log.Debug(ctx, "repl stopped")
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "guest"
	}
	return a.authService.FullName()
}

// redirected reports a guard refusal to the user and remembers where a
// login should continue to.
func (a *App) redirected(d router.Decision) {
	if router.Resolve(d.Redirect).Path == router.PathLogin {
		a.loginPath = d.Redirect
		fmt.Fprintln(a.out, "Please log in first (login or register).")
		return
	}
	fmt.Fprintln(a.out, "You are already logged in.")
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
