package dotcmd

import (
	"bytes"
	"strings"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"igcpp/config"
	"igcpp/engine"
	"igcpp/fragment"
	"igcpp/registry"
	"igcpp/session"
	"igcpp/toolchain"
)

type fixture struct {
	interp   *Interpreter
	session  *session.Session
	registry *registry.Registry
	out      *bytes.Buffer
	exited   *[]int
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	sess := session.New()
	reg := registry.New()
	eng := engine.New(sess, reg, toolchain.NewMockCompiler(ctrl), toolchain.NewMockRunner(ctrl), "#include <iostream>")
	out := &bytes.Buffer{}
	exited := &[]int{}
	cfg := &config.Config{ListTail: 10}
	interp := New(sess, eng, reg, cfg, out, func(code int) { *exited = append(*exited, code) })
	return fixture{interp: interp, session: sess, registry: reg, out: out, exited: exited}
}

func stmt(text string) fragment.Fragment {
	return fragment.Fragment{Text: text, Kind: fragment.KindStatement}
}

func TestIsDotCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: ".l", expected: true},
		{input: "  .q", expected: true},
		{input: "int x = 5;", expected: false},
		{input: "x * 2", expected: false},
	}
	for _, tt := range tests {
		if got := IsDotCommand(tt.input); got != tt.expected {
			t.Errorf("IsDotCommand(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t)
	f.session.Commit(stmt("int x = 5;"))
	gen := f.session.Generation()

	if recompile := f.interp.Run(".zz"); recompile {
		t.Error("unknown command requested a recompile")
	}
	if !strings.Contains(f.out.String(), "Unknown command `.zz`") {
		t.Errorf("missing unknown-command report in output:\n%s", f.out.String())
	}
	if f.session.Generation() != gen {
		t.Error("unknown command mutated the session")
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	f := newFixture(t)
	f.interp.Run(".h")
	for _, cmd := range Commands() {
		if !strings.Contains(f.out.String(), cmd.Name) {
			t.Errorf("help output is missing %s", cmd.Name)
		}
	}
}

func TestListShowsBoundedTail(t *testing.T) {
	f := newFixture(t)
	f.interp.cfg.ListTail = 2
	f.session.Commit(stmt("int a = 1;"))
	f.session.Commit(stmt("int b = 2;"))
	f.session.Commit(stmt("int c = 3;"))

	f.interp.Run(".l")
	got := f.out.String()
	if strings.Contains(got, "int a = 1;") {
		t.Errorf(".l listed beyond the tail:\n%s", got)
	}
	for _, want := range []string{"int b = 2;", "int c = 3;"} {
		if !strings.Contains(got, want) {
			t.Errorf(".l missing %q:\n%s", want, got)
		}
	}
}

func TestListEmptySession(t *testing.T) {
	f := newFixture(t)
	f.interp.Run(".l")
	if !strings.Contains(f.out.String(), "No code entered yet") {
		t.Errorf("unexpected output for empty session:\n%s", f.out.String())
	}
}

func TestListAllDeduplicatesIncludes(t *testing.T) {
	f := newFixture(t)
	inc := fragment.Fragment{Text: "#include <vector>", Kind: fragment.KindInclude}
	f.session.Commit(inc)
	f.session.Commit(inc)

	f.interp.Run(".L")
	if strings.Count(f.out.String(), "#include <vector>") != 1 {
		t.Errorf(".L listed a duplicated include twice:\n%s", f.out.String())
	}
}

func TestListAllOmitsUndoneFragment(t *testing.T) {
	f := newFixture(t)
	f.session.Commit(stmt("int x = 5;"))
	f.session.Commit(stmt("int y = 1;"))
	f.session.Undo()

	f.interp.Run(".L")
	got := f.out.String()
	if strings.Contains(got, "int y = 1;") {
		t.Errorf(".L listed an undone fragment:\n%s", got)
	}
	if !strings.Contains(got, "int x = 5;") {
		t.Errorf(".L missing a committed fragment:\n%s", got)
	}
}

func TestLineNumberToggleAffectsListings(t *testing.T) {
	f := newFixture(t)
	f.session.Commit(stmt("int x = 5;"))
	f.session.Commit(stmt("int y = 1;"))

	f.interp.Run(".n")
	if !strings.Contains(f.out.String(), "Line numbers on") {
		t.Fatalf("first .n did not report on:\n%s", f.out.String())
	}
	f.out.Reset()
	f.interp.Run(".l")
	numbered := f.out.String()
	if !strings.Contains(numbered, "1  int x = 5;") || !strings.Contains(numbered, "2  int y = 1;") {
		t.Errorf(".l not numbered after toggle:\n%s", numbered)
	}

	f.interp.Run(".n")
	f.out.Reset()
	f.interp.Run(".l")
	plain := f.out.String()
	if strings.Contains(plain, "1  int x = 5;") {
		t.Errorf(".l still numbered after toggling off:\n%s", plain)
	}
	if !strings.Contains(plain, "int x = 5;") {
		t.Errorf("content changed by number toggle:\n%s", plain)
	}
}

func TestUndoRemovesLastFragment(t *testing.T) {
	f := newFixture(t)
	f.registry.Record("int y = 1;")
	f.session.Commit(stmt("int y = 1;"))

	if recompile := f.interp.Run(".u"); recompile {
		t.Error("undo requested a recompile")
	}
	if !strings.Contains(f.out.String(), "Undone `int y = 1;`") {
		t.Errorf("missing undo report:\n%s", f.out.String())
	}
	if len(f.session.All()) != 0 {
		t.Error("undo left the fragment committed")
	}
	if len(f.registry.Names()) != 0 {
		t.Error("undo left the declared name registered")
	}
}

func TestUndoOnEmptySession(t *testing.T) {
	f := newFixture(t)
	f.interp.Run(".u")
	if !strings.Contains(f.out.String(), "Nothing to undo") {
		t.Errorf("missing no-op report:\n%s", f.out.String())
	}
}

func TestRedoRequestsRecompile(t *testing.T) {
	f := newFixture(t)
	f.session.Commit(stmt("int y = 1;"))
	f.session.Undo()

	if recompile := f.interp.Run(".r"); !recompile {
		t.Error("redo did not request a recompile")
	}
	if !strings.Contains(f.out.String(), "Redone `int y = 1;`") {
		t.Errorf("missing redo report:\n%s", f.out.String())
	}
	if len(f.session.All()) != 1 {
		t.Error("redo did not restore the fragment")
	}
}

func TestRedoWithNothingToRedo(t *testing.T) {
	f := newFixture(t)
	if recompile := f.interp.Run(".r"); recompile {
		t.Error("empty redo requested a recompile")
	}
	if !strings.Contains(f.out.String(), "Nothing to redo") {
		t.Errorf("missing no-op report:\n%s", f.out.String())
	}
}

func TestResetClearsSessionAndRegistry(t *testing.T) {
	f := newFixture(t)
	f.session.Commit(stmt("int x = 5;"))
	f.registry.Record("int x = 5;")

	f.interp.Run(".x")
	if len(f.session.All()) != 0 {
		t.Error("reset left fragments behind")
	}
	if len(f.registry.Names()) != 0 {
		t.Error("reset left registered names behind")
	}
}

func TestLastErrorsWithoutFailure(t *testing.T) {
	f := newFixture(t)
	f.interp.Run(".e")
	if !strings.Contains(f.out.String(), "No compile errors") {
		t.Errorf("unexpected .e output:\n%s", f.out.String())
	}
}

func TestQuitCallsExit(t *testing.T) {
	f := newFixture(t)
	f.interp.Run(".q")
	if len(*f.exited) != 1 || (*f.exited)[0] != 0 {
		t.Errorf("exit calls = %v, expected one call with status 0", *f.exited)
	}
}
