// Package launch builds SsmsMin command lines and spawns the tool. The
// argument grammar and the password-over-stdin handshake follow the
// tool's own contract: fixed flag order, double-quoted values, and exactly
// one password value read from standard input when SQL authentication is in
// use.
package launch

import "strings"

// ServerPropertiesAction identifies the server-properties dialog inside
// SsmsMin's object hierarchy.
const ServerPropertiesAction = "sqla:Properties@Microsoft.SqlServer.Management.Smo.Server"

// Params carries one dialog invocation. All fields except Action and Server
// are optional. UseAAD selects federated authentication, which excludes the
// user/password flags.
type Params struct {
	Action   string
	Server   string
	Database string
	User     string
	Password string
	UseAAD   bool
	URN      string
}

// CommandArgs serialises the params into the SsmsMin flag string.
//
// Flags appear in fixed order, each preceded by a literal space, values
// double-quoted. Absent fields contribute nothing; the result is not
// whitespace-normalised. -U and -G are mutually exclusive: -U is only
// emitted outside AAD mode, -G only inside it.
func (p Params) CommandArgs() string {
	var b strings.Builder
	if p.Action != "" {
		b.WriteString(` -a "` + p.Action + `"`)
	}
	if p.Server != "" {
		b.WriteString(` -S "` + p.Server + `"`)
	}
	if p.Database != "" {
		b.WriteString(` -D "` + p.Database + `"`)
	}
	if !p.UseAAD && p.User != "" {
		b.WriteString(` -U "` + p.User + `"`)
	}
	if p.UseAAD {
		b.WriteString(" -G")
	}
	if p.URN != "" {
		b.WriteString(` -u "` + p.URN + `"`)
	}
	return b.String()
}

// Stdin returns the value to write to the spawned process's input stream,
// or nil when the stream must be left untouched (AAD mode). Outside AAD mode
// the password is always written, empty string included, because the tool
// blocks reading its password prompt.
func (p Params) Stdin() *string {
	if p.UseAAD {
		return nil
	}
	pw := p.Password
	return &pw
}

// Launcher spawns SsmsMin through a Runner.
type Launcher struct {
	Runner Runner
}

// Launch spawns the executable with the params' flag string appended.
// onExit is invoked exactly once when the process terminates (or fails to
// spawn), carrying the exit code and captured stderr. Launch itself returns
// as soon as the process is handed to the Runner.
func (l *Launcher) Launch(exePath string, p Params, onExit func(code int, stderr string)) {
	cmdline := `"` + exePath + `"` + p.CommandArgs()
	l.Runner.Run(cmdline, p.Stdin(), onExit)
}
