// Package session holds the mutable state of one REPL session: the
// ordered fragments committed so far, the transient display
// expressions for the current turn, and the listing/output bookkeeping.
//
// Committed fragments live in a journal with a cursor. Undo moves the
// cursor back, redo moves it forward, and a fresh commit truncates the
// redo tail. The state at rest is always last-known-good: every
// mutation happens either through a committed compile or through an
// explicit dot-command.
package session

import (
	"slices"

	"igcpp/fragment"
)

type Session struct {
	journal []fragment.Fragment
	cursor  int
	nextSeq int

	// Display expressions are re-evaluated fresh each turn and never
	// persisted into the journal.
	exprs []fragment.Fragment

	showLineNumbers bool
	generation      int

	// The whole program re-runs every turn; only output beyond these
	// byte counts is new and gets shown.
	stdoutShown int
	stderrShown int
}

func New() *Session {
	return &Session{}
}

// Commit appends a fragment after a successful compile. Any undone
// (redoable) tail is discarded.
func (s *Session) Commit(f fragment.Fragment) {
	s.journal = s.journal[:s.cursor]
	f.Seq = s.nextSeq
	s.nextSeq++
	s.journal = append(s.journal, f)
	s.cursor++
	s.generation++
}

// Undo steps the cursor back over the most recently committed fragment
// and rewinds the shown-output counters. Reports false on an empty
// journal.
func (s *Session) Undo() (fragment.Fragment, bool) {
	if s.cursor == 0 {
		return fragment.Fragment{}, false
	}
	s.cursor--
	undone := s.journal[s.cursor]
	s.stdoutShown -= undone.OutputBytes
	s.stderrShown -= undone.ErrBytes
	s.generation++
	return undone, true
}

// Redo restores the most recently undone fragment. The caller must
// recompile afterwards; the redone fragment's output is re-shown and
// re-attributed by that run.
func (s *Session) Redo() (fragment.Fragment, bool) {
	if s.cursor >= len(s.journal) {
		return fragment.Fragment{}, false
	}
	s.journal[s.cursor].OutputBytes = 0
	s.journal[s.cursor].ErrBytes = 0
	redone := s.journal[s.cursor]
	s.cursor++
	s.generation++
	return redone, true
}

// Reset clears the session back to its initial empty state.
func (s *Session) Reset() {
	s.journal = nil
	s.cursor = 0
	s.nextSeq = 0
	s.exprs = nil
	s.stdoutShown = 0
	s.stderrShown = 0
	s.generation++
}

// All returns the live (committed, not undone) fragments in entry order.
func (s *Session) All() []fragment.Fragment {
	return slices.Clone(s.journal[:s.cursor])
}

func (s *Session) kind(k fragment.Kind) []fragment.Fragment {
	var out []fragment.Fragment
	for _, f := range s.journal[:s.cursor] {
		if f.Kind == k {
			out = append(out, f)
		}
	}
	return out
}

func (s *Session) Includes() []fragment.Fragment {
	return s.kind(fragment.KindInclude)
}

func (s *Session) Decls() []fragment.Fragment {
	return s.kind(fragment.KindDeclaration)
}

func (s *Session) Stmts() []fragment.Fragment {
	return s.kind(fragment.KindStatement)
}

// SetExprs replaces the current turn's display expressions.
func (s *Session) SetExprs(frags ...fragment.Fragment) {
	s.exprs = slices.Clone(frags)
	s.generation++
}

// ClearExprs drops the display expressions once the turn is rendered.
func (s *Session) ClearExprs() {
	if len(s.exprs) == 0 {
		return
	}
	s.exprs = nil
	s.generation++
}

func (s *Session) Exprs() []fragment.Fragment {
	return slices.Clone(s.exprs)
}

// ToggleLineNumbers flips the listing flag and returns the new value.
// It affects only .l/.L output, never compilation.
func (s *Session) ToggleLineNumbers() bool {
	s.showLineNumbers = !s.showLineNumbers
	s.generation++
	return s.showLineNumbers
}

func (s *Session) LineNumbers() bool {
	return s.showLineNumbers
}

func (s *Session) Generation() int {
	return s.generation
}

func (s *Session) ShownStdout() int {
	return s.stdoutShown
}

func (s *Session) ShownStderr() int {
	return s.stderrShown
}

// AdvanceShown attributes freshly shown output bytes to the most
// recently committed fragment so undo can rewind them later.
func (s *Session) AdvanceShown(outBytes, errBytes int) {
	if outBytes == 0 && errBytes == 0 {
		return
	}
	s.stdoutShown += outBytes
	s.stderrShown += errBytes
	if s.cursor > 0 {
		s.journal[s.cursor-1].OutputBytes += outBytes
		s.journal[s.cursor-1].ErrBytes += errBytes
	}
}

// Snapshot is an immutable pre-turn copy used for atomic rollback when
// a compile fails.
type Snapshot struct {
	journal     []fragment.Fragment
	cursor      int
	nextSeq     int
	exprs       []fragment.Fragment
	stdoutShown int
	stderrShown int
	generation  int
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		journal:     slices.Clone(s.journal),
		cursor:      s.cursor,
		nextSeq:     s.nextSeq,
		exprs:       slices.Clone(s.exprs),
		stdoutShown: s.stdoutShown,
		stderrShown: s.stderrShown,
		generation:  s.generation,
	}
}

// Restore puts the session back to the snapshotted state byte for byte.
func (s *Session) Restore(snap Snapshot) {
	s.journal = slices.Clone(snap.journal)
	s.cursor = snap.cursor
	s.nextSeq = snap.nextSeq
	s.exprs = slices.Clone(snap.exprs)
	s.stdoutShown = snap.stdoutShown
	s.stderrShown = snap.stderrShown
	s.generation = snap.generation
}
