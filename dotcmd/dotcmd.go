// Package dotcmd interprets the meta-commands that mutate session
// state directly, bypassing the compile cycle.
package dotcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"igcpp/assemble"
	"igcpp/config"
	"igcpp/engine"
	"igcpp/registry"
	"igcpp/session"
)

// Command describes one dot-command for help and completion.
type Command struct {
	Name string
	Desc string
}

// Commands returns the recognized dot-commands in help order.
func Commands() []Command {
	out := make([]Command, len(commandOrder))
	for i, name := range commandOrder {
		out[i] = Command{Name: name, Desc: commands[name].desc}
	}
	return out
}

type handler func(*Interpreter) (recompile bool)

type command struct {
	desc string
	fn   handler
}

var commandOrder = []string{".h", ".c", ".e", ".l", ".L", ".n", ".r", ".u", ".x", ".q"}

var commands map[string]command

func init() {
	commands = map[string]command{
		".h": {"Show this help message", (*Interpreter).help},
		".c": {"Clear the screen", (*Interpreter).clear},
		".e": {"Show the last compile errors/warnings", (*Interpreter).lastErrors},
		".l": {"List the code you have entered", (*Interpreter).list},
		".L": {"List the whole program as given to the compiler", (*Interpreter).listAll},
		".n": {"Toggle line numbers for .l and .L listings", (*Interpreter).toggleNumbers},
		".r": {"Redo undone input", (*Interpreter).redo},
		".u": {"Undo previous input", (*Interpreter).undo},
		".x": {"Reset the session", (*Interpreter).reset},
		".q": {"Quit", (*Interpreter).quit},
	}
}

type Interpreter struct {
	session  *session.Session
	engine   *engine.Engine
	registry *registry.Registry
	cfg      *config.Config
	out      io.Writer
	exit     func(int)
}

func New(sess *session.Session, eng *engine.Engine, reg *registry.Registry, cfg *config.Config, out io.Writer, exit func(int)) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	if exit == nil {
		exit = os.Exit
	}
	return &Interpreter{
		session:  sess,
		engine:   eng,
		registry: reg,
		cfg:      cfg,
		out:      out,
		exit:     exit,
	}
}

// IsDotCommand reports whether the line is meta-prefixed.
func IsDotCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ".")
}

// Run executes one dot-command. It reports whether the caller must
// recompile and rerun the session afterwards (only redo needs that).
// Unknown commands are reported and leave state untouched.
func (i *Interpreter) Run(line string) (recompile bool) {
	name := strings.TrimSpace(line)
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintln(i.out, color.RedString("Unknown command `%s`. Available commands:", name))
		return i.help()
	}
	return cmd.fn(i)
}

func (i *Interpreter) help() bool {
	for _, name := range commandOrder {
		fmt.Fprintf(i.out, "%s  %s\n", color.BlueString(name), commands[name].desc)
	}
	return false
}

func (i *Interpreter) clear() bool {
	fmt.Fprint(i.out, "\033[2J\033[H")
	return false
}

func (i *Interpreter) lastErrors() bool {
	if diagnostics := i.engine.LastDiagnostics(); diagnostics != "" {
		fmt.Fprintln(i.out, diagnostics)
	} else {
		fmt.Fprintln(i.out, color.GreenString("No compile errors"))
	}
	return false
}

func (i *Interpreter) list() bool {
	frags := i.session.All()
	if len(frags) == 0 {
		fmt.Fprintln(i.out, "No code entered yet")
		return false
	}
	if tail := i.cfg.ListTail; tail > 0 && len(frags) > tail {
		frags = frags[len(frags)-tail:]
	}
	lines := make([]string, 0, len(frags))
	for _, f := range frags {
		lines = append(lines, f.Text)
	}
	i.print(strings.Join(lines, "\n"))
	return false
}

func (i *Interpreter) listAll() bool {
	if len(i.session.All()) == 0 {
		fmt.Fprintln(i.out, "No code entered yet")
		return false
	}
	src := assemble.RenderUser(i.session.Includes(), i.session.Decls(), i.session.Stmts())
	i.print(strings.TrimRight(src, "\n"))
	return false
}

func (i *Interpreter) toggleNumbers() bool {
	if i.session.ToggleLineNumbers() {
		fmt.Fprintln(i.out, "Line numbers on")
	} else {
		fmt.Fprintln(i.out, "Line numbers off")
	}
	return false
}

func (i *Interpreter) undo() bool {
	undone, ok := i.session.Undo()
	if !ok {
		fmt.Fprintln(i.out, "Nothing to undo")
		return false
	}
	i.registry.Forget(undone.Text)
	fmt.Fprintf(i.out, "Undone `%s`\n", undone.Text)
	return false
}

func (i *Interpreter) redo() bool {
	redone, ok := i.session.Redo()
	if !ok {
		fmt.Fprintln(i.out, "Nothing to redo")
		return false
	}
	i.registry.Record(redone.Text)
	fmt.Fprintf(i.out, "Redone `%s`\n", redone.Text)
	return true
}

func (i *Interpreter) reset() bool {
	i.session.Reset()
	i.registry.Reset()
	i.engine.ResetDiagnostics()
	fmt.Fprintln(i.out, "Session reset")
	return false
}

func (i *Interpreter) quit() bool {
	fmt.Fprintln(i.out, "Bye!")
	i.exit(0)
	return false
}

// print writes a listing, numbering its lines when the toggle is on.
func (i *Interpreter) print(code string) {
	if i.session.LineNumbers() {
		code = addLineNumbers(code)
	}
	fmt.Fprintln(i.out, code)
}

func addLineNumbers(code string) string {
	lines := strings.Split(code, "\n")
	width := len(fmt.Sprint(len(lines)))
	for n, line := range lines {
		lines[n] = fmt.Sprintf("%*d  %s", width, n+1, line)
	}
	return strings.Join(lines, "\n")
}
