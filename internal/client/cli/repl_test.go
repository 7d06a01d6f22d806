package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error  { f.calls = append(f.calls, "status"); return nil }
func (f *fakeExec) Profile(ctx context.Context) error { f.calls = append(f.calls, "profile"); return nil }
func (f *fakeExec) Feed(ctx context.Context) error    { f.calls = append(f.calls, "feed"); return nil }
func (f *fakeExec) Home(ctx context.Context) error    { f.calls = append(f.calls, "home"); return nil }

// capturePrintln records everything printed through printlnFn.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := capturePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"profile",
		"feed extra args",
		"home",
		"status",
		"logout",
		"foobar",
		"exit",
		"profile",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"login", "profile", "feed", "home", "status", "logout"}, exec.calls)
	assert.Contains(t, *out, "Available commands: login, status, exit")
	assert.Contains(t, *out, "Available commands: profile, feed, home, status, logout, exit")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("status")))

	assert.Equal(t, []string{"status"}, exec.calls)
}

func TestRunREPL_StopsOnCanceledContext(t *testing.T) {
	capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("status\nprofile\n")))

	assert.Empty(t, exec.calls)
}
