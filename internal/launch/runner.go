// runner.go implements process execution for the launcher.
//
// Separated from launch.go so the argument grammar can be tested without
// spawning anything; tests substitute a fake Runner.

package launch

import (
	"bytes"
	"io"
	"os/exec"
	"runtime"
)

// Runner executes a command line out-of-band and reports completion through
// a callback rather than a return value. Spawn failures are reported the
// same way, with code -1 and the error text as stderr.
type Runner interface {
	// Run starts cmdline. If stdin is non-nil its value is written to the
	// process's input stream, which is then closed; a nil stdin leaves the
	// stream untouched. onExit fires exactly once.
	Run(cmdline string, stdin *string, onExit func(code int, stderr string))
}

// ShellRunner executes command lines through the platform shell, which
// honours the double-quoting in the flag grammar.
type ShellRunner struct{}

// Run starts the process and waits for it on a separate goroutine.
func (ShellRunner) Run(cmdline string, stdin *string, onExit func(code int, stderr string)) {
	cmd := shellCommand(cmdline)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	var in io.WriteCloser
	if stdin != nil {
		pipe, err := cmd.StdinPipe()
		if err != nil {
			go onExit(-1, err.Error())
			return
		}
		in = pipe
	}

	if err := cmd.Start(); err != nil {
		go onExit(-1, err.Error())
		return
	}

	if in != nil {
		// The tool reads exactly one password value; write it and close so
		// the read completes even for an empty password.
		_, _ = io.WriteString(in, *stdin)
		_ = in.Close()
	}

	go func() {
		err := cmd.Wait()
		code := cmd.ProcessState.ExitCode()
		out := stderr.String()
		if err != nil && out == "" && code == -1 {
			out = err.Error()
		}
		onExit(code, out)
	}()
}

func shellCommand(cmdline string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/c", cmdline)
	}
	return exec.Command("/bin/sh", "-c", cmdline)
}
