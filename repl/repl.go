// Package repl drives the interactive loop: it reads lines through
// go-prompt, routes them to the dot-command interpreter or the compile
// engine, and renders outcomes in color.
package repl

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/fatih/color"

	"igcpp/completer"
	"igcpp/config"
	"igcpp/dotcmd"
	"igcpp/engine"
	"igcpp/errs"
)

type Repl struct {
	engine    *engine.Engine
	dot       *dotcmd.Interpreter
	completer *completer.Completer
	cfg       *config.Config

	compilerVersion string
	out             io.Writer
	exit            func(int)

	interrupts int
}

func New(eng *engine.Engine, dot *dotcmd.Interpreter, comp *completer.Completer, cfg *config.Config, compilerVersion string, out io.Writer, exit func(int)) *Repl {
	if out == nil {
		out = os.Stdout
	}
	if exit == nil {
		exit = os.Exit
	}
	return &Repl{
		engine:          eng,
		dot:             dot,
		completer:       comp,
		cfg:             cfg,
		compilerVersion: compilerVersion,
		out:             out,
		exit:            exit,
	}
}

func (r *Repl) Run() {
	printAscii()
	fmt.Fprintf(r.out, "igcpp %s - %s %s, type .h for help\n", VERSION, r.cfg.Compiler.Command, r.compilerVersion)

	pt := prompt.New(
		r.execute,
		r.completer.Complete,
		prompt.OptionTitle("igcpp"),
		prompt.OptionPrefix(r.cfg.Prompt),
		prompt.OptionLivePrefix(r.livePrefix),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn:  r.interrupt,
		}),
	)
	pt.Run()
}

// livePrefix switches to the continuation prompt while a multi-line
// unit is still being collected.
func (r *Repl) livePrefix() (string, bool) {
	if r.engine.Pending() {
		return r.cfg.ContinuationPrompt, true
	}
	return "", false
}

// interrupt handles Ctrl+C at the prompt: once clears the line, twice
// in a row exits.
func (r *Repl) interrupt(buf *prompt.Buffer) {
	r.interrupts++
	if r.interrupts >= 2 {
		fmt.Fprintln(r.out, "Bye!")
		r.exit(0)
		return
	}
	buf.DeleteBeforeCursor(len(buf.Document().TextBeforeCursor()))
	buf.Delete(len(buf.Document().TextAfterCursor()))
	fmt.Fprintln(r.out, "(press Ctrl+C again or type .q to quit)")
}

// execute processes one input line. It implements the go-prompt
// executor interface.
func (r *Repl) execute(input string) {
	defer func() {
		if rec := recover(); rec != nil {
			errs.HandleError(errs.NewInternalError(fmt.Sprintf("%v", rec)))
			fmt.Println(string(debug.Stack()))
		}
	}()
	r.interrupts = 0

	// Dot-commands are recognized only at the top level; inside a
	// continuation a leading dot belongs to the code.
	if !r.engine.Pending() && dotcmd.IsDotCommand(input) {
		if recompile := r.dot.Run(input); recompile {
			outcome, err := r.engine.Replay()
			if err != nil {
				errs.HandleError(err)
				return
			}
			r.render(outcome)
		}
		return
	}

	outcome, err := r.engine.Submit(input)
	if err != nil {
		errs.HandleError(err)
		return
	}
	r.render(outcome)
}

func (r *Repl) render(o engine.Outcome) {
	switch o.Kind {
	case engine.OutcomeCompileError:
		fmt.Fprintln(r.out, color.New(color.FgWhite, color.BgRed).Sprint(" Compile error - type .e to see it "))
	case engine.OutcomeExecuted:
		if o.Stdout != "" {
			fmt.Fprint(r.out, color.GreenString("%s", ensureNewline(o.Stdout)))
		}
		if o.Stderr != "" {
			fmt.Fprint(r.out, color.RedString("%s", ensureNewline(o.Stderr)))
		}
		if o.Interrupted {
			fmt.Fprintln(r.out, color.YellowString("interrupted"))
		} else if o.ExitCode != 0 {
			fmt.Fprintln(r.out, color.YellowString("exit status %d", o.ExitCode))
		}
	}
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
