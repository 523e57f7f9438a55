package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	f.loggedIn = true
	return nil
}
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
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) ClearError(ctx context.Context) error {
	f.calls = append(f.calls, "clear")
	return nil
}
func (f *fakeExec) Reset(ctx context.Context) error {
	f.calls = append(f.calls, "reset")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_SignupFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"signup",
		"help",
		"whoami",
		"clear",
		"logout",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"signup", "whoami", "clear", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls mismatch at %d: got %v, want %v", i, exec.calls, want)
		}
	}
}

func TestRunREPL_RegisterAliasesSignup(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("register\nquit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if len(exec.calls) != 1 || exec.calls[0] != "signup" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BlankAndUnknownLines(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("\n\nnope\nquit\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("whoami\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if len(exec.calls) != 1 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
