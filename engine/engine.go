// Package engine orchestrates one REPL turn: classify the input,
// snapshot the session, assemble the full program, compile it, and
// either commit and run or roll back. A failed turn leaves the session
// byte for byte at its pre-turn value.
package engine

import (
	"strings"

	"igcpp/assemble"
	"igcpp/fragment"
	"igcpp/registry"
	"igcpp/session"
	"igcpp/toolchain"
)

type OutcomeKind int

const (
	// OutcomeNoop means the input was empty; nothing happened.
	OutcomeNoop OutcomeKind = iota
	// OutcomePending means the input opened a block; the engine is
	// waiting for continuation lines.
	OutcomePending
	// OutcomeCompileError means the turn was rolled back.
	OutcomeCompileError
	// OutcomeExecuted means the turn was committed and the program ran.
	OutcomeExecuted
)

// Outcome is the structured result of one turn, rendered by the REPL
// driver. Stdout/Stderr carry only the output not yet shown in
// previous turns.
type Outcome struct {
	Kind        OutcomeKind
	Diagnostics string
	Stdout      string
	Stderr      string
	ExitCode    int
	Interrupted bool
}

type Engine struct {
	session    *session.Session
	registry   *registry.Registry
	classifier *fragment.Classifier
	compiler   toolchain.Compiler
	runner     toolchain.Runner
	preamble   string

	lastDiagnostics string
}

func New(sess *session.Session, reg *registry.Registry, compiler toolchain.Compiler, runner toolchain.Runner, preamble string) *Engine {
	return &Engine{
		session:    sess,
		registry:   reg,
		classifier: fragment.NewClassifier(),
		compiler:   compiler,
		runner:     runner,
		preamble:   preamble,
	}
}

// Pending reports whether a multi-line unit is still being collected.
func (e *Engine) Pending() bool {
	return e.classifier.Pending()
}

// LastDiagnostics returns the diagnostics of the most recent compile
// failure, empty after a successful compile.
func (e *Engine) LastDiagnostics() string {
	return e.lastDiagnostics
}

// ResetDiagnostics forgets the last compile failure; used when the
// session is reset.
func (e *Engine) ResetDiagnostics() {
	e.lastDiagnostics = ""
}

// Submit processes one raw input line.
func (e *Engine) Submit(line string) (Outcome, error) {
	if !e.classifier.Feed(line) {
		return Outcome{Kind: OutcomePending}, nil
	}
	text := e.classifier.Take()
	if strings.TrimSpace(text) == "" {
		return Outcome{Kind: OutcomeNoop}, nil
	}

	kind := fragment.Classify(text)
	snap := e.session.Snapshot()

	frag := fragment.Fragment{Text: text, Kind: kind}
	if kind == fragment.KindExpression {
		// Display expressions are evaluated this turn only and never
		// persisted.
		e.session.SetExprs(frag)
	} else {
		e.session.Commit(frag)
	}

	result, err := e.compiler.Compile(e.render())
	if err != nil {
		e.session.Restore(snap)
		return Outcome{}, err
	}
	if !result.OK {
		e.session.Restore(snap)
		e.lastDiagnostics = result.Diagnostics
		return Outcome{Kind: OutcomeCompileError, Diagnostics: result.Diagnostics}, nil
	}
	e.lastDiagnostics = ""

	// The compile is committed from here on; execution failures and
	// interrupts never roll it back.
	outcome, err := e.execute(result.BinaryPath, kind != fragment.KindExpression)
	if err != nil {
		return Outcome{}, err
	}
	if kind != fragment.KindExpression {
		e.registry.Record(text)
	}
	return outcome, nil
}

// Replay recompiles and reruns the current committed state without
// adding a fragment; used after redo.
func (e *Engine) Replay() (Outcome, error) {
	result, err := e.compiler.Compile(e.render())
	if err != nil {
		return Outcome{}, err
	}
	if !result.OK {
		e.lastDiagnostics = result.Diagnostics
		return Outcome{Kind: OutcomeCompileError, Diagnostics: result.Diagnostics}, nil
	}
	e.lastDiagnostics = ""
	return e.execute(result.BinaryPath, true)
}

func (e *Engine) render() string {
	return assemble.Render(
		e.preamble,
		e.session.Includes(),
		e.session.Decls(),
		e.session.Stmts(),
		e.session.Exprs(),
	)
}

// execute runs the binary and surfaces only the output delta beyond
// what previous turns already showed. Persisted turns advance the shown
// counters; display-expression turns do not, since the expression is
// absent from the next turn's program and its output never recurs.
func (e *Engine) execute(binaryPath string, persist bool) (Outcome, error) {
	exec, err := e.runner.Run(binaryPath)
	e.session.ClearExprs()
	if err != nil {
		return Outcome{}, err
	}

	stdout := delta(exec.Stdout, e.session.ShownStdout())
	stderr := delta(exec.Stderr, e.session.ShownStderr())
	if persist && !exec.Interrupted {
		e.session.AdvanceShown(len(stdout), len(stderr))
	}
	return Outcome{
		Kind:        OutcomeExecuted,
		Stdout:      stdout,
		Stderr:      stderr,
		ExitCode:    exec.ExitCode,
		Interrupted: exec.Interrupted,
	}, nil
}

func delta(full string, shown int) string {
	if len(full) <= shown {
		return ""
	}
	return full[shown:]
}
