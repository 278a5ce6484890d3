package launch

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandArgs(t *testing.T) {
	t.Run("aad mode", func(t *testing.T) {
		args := Params{Action: "X", Server: "S", UseAAD: true}.CommandArgs()
		assert.Contains(t, args, `-a "X"`)
		assert.Contains(t, args, `-S "S"`)
		assert.Contains(t, args, "-G")
		assert.NotContains(t, args, "-U")
	})

	t.Run("sql auth mode", func(t *testing.T) {
		args := Params{Action: "X", Server: "S", UseAAD: false, User: "U"}.CommandArgs()
		assert.Contains(t, args, `-U "U"`)
		assert.NotContains(t, args, "-G")
	})

	t.Run("fixed flag order", func(t *testing.T) {
		args := Params{
			Action:   "sqla:Properties",
			Server:   "tcp:db.example.com,1433",
			Database: "master",
			User:     "sa",
			URN:      "Server/Database",
		}.CommandArgs()
		assert.Equal(t,
			` -a "sqla:Properties" -S "tcp:db.example.com,1433" -D "master" -U "sa" -u "Server/Database"`,
			args)
	})

	t.Run("absent fields contribute nothing", func(t *testing.T) {
		args := Params{Action: "X", Server: "S"}.CommandArgs()
		assert.Equal(t, ` -a "X" -S "S"`, args)
	})
}

func TestStdin(t *testing.T) {
	t.Run("aad leaves stdin untouched", func(t *testing.T) {
		assert.Nil(t, Params{UseAAD: true, Password: "secret"}.Stdin())
	})

	t.Run("sql auth writes password", func(t *testing.T) {
		in := Params{Password: "secret"}.Stdin()
		require.NotNil(t, in)
		assert.Equal(t, "secret", *in)
	})

	t.Run("missing password writes empty string", func(t *testing.T) {
		in := Params{}.Stdin()
		require.NotNil(t, in)
		assert.Equal(t, "", *in)
	})
}

// fakeRunner records the invocation instead of spawning.
type fakeRunner struct {
	cmdline string
	stdin   *string
	code    int
	stderr  string
}

func (f *fakeRunner) Run(cmdline string, stdin *string, onExit func(int, string)) {
	f.cmdline = cmdline
	f.stdin = stdin
	onExit(f.code, f.stderr)
}

func TestLauncher(t *testing.T) {
	t.Run("quotes executable and appends args", func(t *testing.T) {
		r := &fakeRunner{}
		l := &Launcher{Runner: r}

		done := make(chan struct{})
		l.Launch(`C:\tools\SsmsMin.exe`, Params{Action: "X", Server: "S", Password: "pw"}, func(int, string) {
			close(done)
		})
		<-done

		assert.Equal(t, `"C:\tools\SsmsMin.exe" -a "X" -S "S"`, r.cmdline)
		require.NotNil(t, r.stdin)
		assert.Equal(t, "pw", *r.stdin)
	})

	t.Run("aad launch never touches stdin", func(t *testing.T) {
		r := &fakeRunner{}
		l := &Launcher{Runner: r}

		l.Launch("/opt/ssmsmin", Params{Action: "X", Server: "S", UseAAD: true}, func(int, string) {})
		assert.Nil(t, r.stdin)
	})

	t.Run("exit status reaches callback", func(t *testing.T) {
		r := &fakeRunner{code: 2, stderr: "boom"}
		l := &Launcher{Runner: r}

		var code int
		var stderr string
		l.Launch("/opt/ssmsmin", Params{Server: "S"}, func(c int, e string) {
			code, stderr = c, e
		})
		assert.Equal(t, 2, code)
		assert.Equal(t, "boom", stderr)
	})
}

func TestShellRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell fixtures assume a POSIX shell")
	}

	t.Run("captures exit code and stderr", func(t *testing.T) {
		done := make(chan struct{})
		var code int
		var stderr string

		ShellRunner{}.Run(`sh -c 'echo oops >&2; exit 3'`, nil, func(c int, e string) {
			code, stderr = c, e
			close(done)
		})
		<-done

		assert.Equal(t, 3, code)
		assert.Contains(t, stderr, "oops")
	})

	t.Run("forwards stdin and closes it", func(t *testing.T) {
		done := make(chan struct{})
		var code int

		// cat exits only once stdin is closed
		in := "secret"
		ShellRunner{}.Run("cat > /dev/null", &in, func(c int, _ string) {
			code = c
			close(done)
		})
		<-done

		assert.Equal(t, 0, code)
	})

	t.Run("spawn failure reports through callback", func(t *testing.T) {
		done := make(chan struct{})
		var code int

		ShellRunner{}.Run("/nonexistent/binary-for-test", nil, func(c int, _ string) {
			code = c
			close(done)
		})
		<-done

		assert.NotEqual(t, 0, code)
	})
}
