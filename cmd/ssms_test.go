package cmd

import (
	"runtime"
	"strings"
	"testing"
)

func addProfile(env *testEnv, name string, extra ...string) {
	args := append([]string{"connection", "add", name,
		"--server", "db.example.com",
		"--database", "master",
		"--user", "sa",
		"--password", "s3cret"}, extra...)
	env.run(args...)
}

func TestSsmsArgs_SQLAuth(t *testing.T) {
	env := newTestEnv(t)
	addProfile(env, "prod")

	out := env.run("ssms", "args")
	env.contains(out, `-a "sqla:Properties@Microsoft.SqlServer.Management.Smo.Server"`)
	env.contains(out, `-S "db.example.com"`)
	env.contains(out, `-D "master"`)
	env.contains(out, `-U "sa"`)
	env.contains(out, "password written to stdin")

	if strings.Contains(out, "-G") {
		t.Errorf("sql auth must not emit -G: %s", out)
	}
	if strings.Contains(out, "s3cret") {
		t.Errorf("password leaked into flags: %s", out)
	}
}

func TestSsmsArgs_AADAuth(t *testing.T) {
	env := newTestEnv(t)
	env.run("connection", "add", "corp",
		"--server", "db.corp.local", "--user", "admin", "--auth", "aad")

	out := env.run("ssms", "args")
	env.contains(out, "-G")

	if strings.Contains(out, `-U "`) {
		t.Errorf("aad auth must not emit -U: %s", out)
	}
	if strings.Contains(out, "password written to stdin") {
		t.Errorf("aad auth must leave stdin untouched: %s", out)
	}
}

func TestSsmsArgs_URN(t *testing.T) {
	env := newTestEnv(t)
	addProfile(env, "prod")

	out := env.run("ssms", "args", "--urn", "Server/Database[@Name='master']")
	env.contains(out, `-u "Server/Database[@Name='master']"`)
}

func TestSsmsArgs_NamedConnection(t *testing.T) {
	env := newTestEnv(t)
	addProfile(env, "prod")
	env.run("connection", "add", "dev", "--server", "dev.example.com", "--password", "x")

	out := env.run("ssms", "args", "-c", "dev")
	env.contains(out, `-S "dev.example.com"`)
}

func TestSsmsArgs_NoConnection(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("ssms", "args")
	if err == nil {
		t.Errorf("ssms args without profiles = nil, want error; output: %s", out)
	}
	env.contains(out, "no active connection")
}

func TestSsmsArgs_JSON(t *testing.T) {
	env := newTestEnv(t)
	addProfile(env, "prod")

	out := env.run("ssms", "args", "-o", "json")
	env.contains(out, `"args"`)
	env.contains(out, `"stdin":true`)
}

func TestSsmsProperties_RequiresWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("launch path exercised manually on windows")
	}
	env := newTestEnv(t)
	addProfile(env, "prod")

	out, err := env.runErr("ssms", "properties")
	if err == nil {
		t.Errorf("ssms properties on %s = nil, want error; output: %s", runtime.GOOS, out)
	}
	env.contains(out, "Windows")
}
