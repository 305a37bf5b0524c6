package toolchain

import (
	"bytes"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"igcpp/errs"
)

//go:generate mockgen -package=toolchain -source=./runner.go -destination=./runner_mock.go
type Runner interface {
	Run(binaryPath string) (Execution, error)
}

// Execution is the observed result of running the compiled program.
// Interrupted is set when the run ended on SIGINT; the committed
// compile is unaffected in that case.
type Execution struct {
	Stdout      string
	Stderr      string
	ExitCode    int
	Interrupted bool
}

type execRunner struct{}

func NewExecRunner() *execRunner {
	return &execRunner{}
}

func (er *execRunner) Run(binaryPath string) (Execution, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(binaryPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Execution{}, errs.NewInternalError("failed to start compiled program").Wrap(err)
	}

	// Forward Ctrl+C to the child instead of killing the session.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	interrupted := false
	for {
		select {
		case <-sigc:
			interrupted = true
			_ = cmd.Process.Signal(os.Interrupt)
		case err := <-done:
			exitCode := 0
			if err != nil {
				exitErr, ok := err.(*exec.ExitError)
				if !ok {
					return Execution{}, errs.NewInternalError("failed to wait for compiled program").Wrap(err)
				}
				exitCode = exitErr.ExitCode()
				if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() && ws.Signal() == syscall.SIGINT {
					interrupted = true
				}
			}
			return Execution{
				Stdout:      stdout.String(),
				Stderr:      stderr.String(),
				ExitCode:    exitCode,
				Interrupted: interrupted,
			}, nil
		}
	}
}
