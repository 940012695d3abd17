package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(_ context.Context, args []string) error {
	return f.record("register", args)
}
func (f *fakeExec) Login(_ context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(_ context.Context, args []string) error {
	f.loggedIn = false
	return f.record("logout", args)
}
func (f *fakeExec) Users(_ context.Context, args []string) error  { return f.record("users", args) }
func (f *fakeExec) User(_ context.Context, args []string) error   { return f.record("user", args) }
func (f *fakeExec) Send(_ context.Context, args []string) error   { return f.record("send", args) }
func (f *fakeExec) Inbox(_ context.Context, args []string) error  { return f.record("inbox", args) }
func (f *fakeExec) Outbox(_ context.Context, args []string) error { return f.record("outbox", args) }
func (f *fakeExec) Show(_ context.Context, args []string) error   { return f.record("show", args) }
func (f *fakeExec) Read(_ context.Context, args []string) error   { return f.record("read", args) }

func runLines(exec execIface, lines ...string) string {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	runREPL(context.Background(), exec, func() string { return "status" }, in, &out)
	return out.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}

	out := runLines(exec,
		"help",
		"login alice",
		"help",
		"users",
		"send bob",
		"inbox",
		"outbox",
		"show m1",
		"read m1",
		"user",
		"foobar",
		"logout",
		"exit",
		"users",
	)

	want := []string{"login", "users", "send", "inbox", "outbox", "show", "read", "user", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	if got := exec.args["show"]; len(got) != 1 || got[0] != "m1" {
		t.Fatalf("show args = %v", got)
	}
	if got := exec.args["login"]; len(got) != 1 || got[0] != "alice" {
		t.Fatalf("login args = %v", got)
	}
	for _, s := range []string{helpLoggedOut, helpLoggedIn, "Unknown command: foobar", "Bye!", "mly status> "} {
		if !strings.Contains(out, s) {
			t.Fatalf("output missing %q:\n%s", s, out)
		}
	}
}

func TestRunREPL_RequiresLogin(t *testing.T) {
	exec := &fakeExec{}

	out := runLines(exec, "inbox", "send bob", "quit")

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if strings.Count(out, errNotLoggedIn.Error()) != 2 {
		t.Fatalf("expected two not-logged-in errors:\n%s", out)
	}
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	exec := &fakeExec{loggedIn: true, err: errors.New("forbidden")}

	out := runLines(exec, "read m1", "", "inbox")

	if len(exec.calls) != 2 {
		t.Fatalf("calls = %v", exec.calls)
	}
	if strings.Count(out, "Error: forbidden") != 2 {
		t.Fatalf("errors not printed:\n%s", out)
	}
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("inbox")), &out)

	if len(exec.calls) != 1 {
		t.Fatalf("calls = %v", exec.calls)
	}
}
