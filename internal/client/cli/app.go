package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/noclaf/internal/client/services"
	"github.com/dmitrijs2005/noclaf/internal/common"
	"github.com/dmitrijs2005/noclaf/internal/logging"
)

type App struct {
	authService     services.AuthService
	resourceService services.ResourceService
	log             logging.Logger
	reader          *bufio.Reader
	out             io.Writer
}

// NewApp wires the services into an App reading from stdin and writing to stdout.
func NewApp(as services.AuthService, rs services.ResourceService, log logging.Logger) *App {
	return &App{
		authService:     as,
		resourceService: rs,
		log:             log,
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.CurrentSession().IsAuthenticated
}

// Run revalidates a stored session, asks for credentials when there is none
// and then serves the REPL until the user leaves.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to noclaf CLI (type 'help' for commands)")

	if err := a.revalidate(ctx); err != nil {
		a.report(ctx, "revalidate", err)
	}
	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// revalidate is a no-op for a logged out user. A session the server no
// longer accepts is dropped by the resource service.
func (a *App) revalidate(ctx context.Context) error {
	if !a.isLoggedIn() {
		return nil
	}
	s, err := a.resourceService.Revalidate(ctx)
	if err != nil && !s.IsAuthenticated {
		printlnFn(common.MsgUnauthenticated)
		return nil
	}
	return err
}

// report logs err and prints the matching user message.
func (a *App) report(ctx context.Context, op string, err error) {
	a.log.Warn(ctx, "command failed", "op", op, "error", err)
	printlnFn(common.UserMessage(err))
}
