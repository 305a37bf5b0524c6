// Package toolchain holds the external-service boundary: compiling the
// assembled source with the system C++ compiler and executing the
// resulting binary. The core engine only ever sees the Compiler and
// Runner interfaces, so it can be tested against scripted outcomes.
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"igcpp/config"
	"igcpp/errs"
)

//go:generate mockgen -package=toolchain -source=./compiler.go -destination=./compiler_mock.go
type Compiler interface {
	Compile(source string) (Result, error)
}

// Result holds one compile attempt's outcome. Diagnostics carry the
// compiler's verbatim stdout+stderr on failure.
type Result struct {
	OK          bool
	BinaryPath  string
	Diagnostics string
}

// gccCompiler pipes the source to the configured compiler over stdin
// and writes the binary into a session-scoped temp directory. The
// binary is overwritten each turn and removed by Close.
type gccCompiler struct {
	command string
	args    []string
	workDir string
	binPath string
}

func NewGccCompiler(cfg config.Compiler) (*gccCompiler, error) {
	workDir, err := os.MkdirTemp("", "igcpp")
	if err != nil {
		return nil, errs.NewInternalError("failed to create session directory").Wrap(err)
	}
	binPath := filepath.Join(workDir, "igcpp_out")

	args := []string{"-x", "c++", "-", "-std=" + cfg.Std}
	args = append(args, cfg.Flags...)
	args = append(args, "-o", binPath)

	return &gccCompiler{
		command: cfg.Command,
		args:    args,
		workDir: workDir,
		binPath: binPath,
	}, nil
}

func (gc *gccCompiler) Compile(source string) (Result, error) {
	cmd := exec.Command(gc.command, gc.args...)
	cmd.Stdin = strings.NewReader(source)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return Result{OK: true, BinaryPath: gc.binPath}, nil
	}
	if _, isExit := err.(*exec.ExitError); !isExit {
		// Compiler went missing mid-session. Recoverable: surfaced the
		// same way as a compile failure.
		return Result{Diagnostics: "compiler unavailable: " + err.Error()}, nil
	}
	diagnostics := string(out)
	if strings.TrimSpace(diagnostics) == "" {
		diagnostics = "Unknown compile error - compiler did not write any output."
	}
	return Result{Diagnostics: diagnostics}, nil
}

// Close removes the session's temporary artifacts.
func (gc *gccCompiler) Close() {
	if gc.workDir != "" {
		os.RemoveAll(gc.workDir)
	}
}
