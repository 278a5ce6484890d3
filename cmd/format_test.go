package cmd

import (
	"os"
	"strings"
	"testing"
)

const testSQL = "select id, name\nfrom users\nwhere id = 1\n"

func TestFormatDocument_List(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("q.sql", testSQL)

	out := env.run("format", "document", path, "--list")
	env.contains(out, "Uppercase keywords")
	env.contains(out, "Trim whitespace")
	env.contains(out, "sqlmate.builtin.keywords")
}

func TestFormatDocument_Use(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("q.sql", testSQL)

	env.run("format", "document", path, "--use", "sqlmate.builtin.keywords")

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	env.contains(string(got), "SELECT id, name")
	env.contains(string(got), "FROM users")
}

func TestFormatDocument_PickerSelects(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("q.sql", testSQL)

	// Entry 1 is the keywords provider (registration order)
	env.runStdin("1\n", "format", "document", path)

	got, _ := os.ReadFile(path)
	env.contains(string(got), "SELECT id, name")
}

func TestFormatDocument_PickerCancel(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("q.sql", testSQL)

	// q cancels; EOF after an empty stdin also cancels
	env.runStdin("q\n", "format", "document", path)

	got, _ := os.ReadFile(path)
	if string(got) != testSQL {
		t.Errorf("cancel modified the file:\n%s", got)
	}
}

func TestFormatDocument_RevealDoesNotConsume(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("q.sql", testSQL)

	// ?1 reveals the contributing package, then 1 selects it
	env.runStdin("?1\n1\n", "format", "document", path)

	got, _ := os.ReadFile(path)
	env.contains(string(got), "SELECT id, name")
}

func TestFormatDocument_Diff(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("q.sql", testSQL)

	out := env.run("format", "document", path, "--use", "1", "--diff")
	env.contains(out, "SELECT")

	// --diff must not write
	got, _ := os.ReadFile(path)
	if string(got) != testSQL {
		t.Errorf("--diff modified the file:\n%s", got)
	}
}

func TestFormatSelection_Lines(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("q.sql", testSQL)

	env.run("format", "selection", path,
		"--lines", "2:2", "--use", "sqlmate.builtin.keywords")

	got, _ := os.ReadFile(path)
	text := string(got)
	env.contains(text, "select id, name") // line 1 untouched
	env.contains(text, "FROM users")      // line 2 formatted
	env.contains(text, "where id = 1")    // line 3 untouched
}

func TestFormatSelection_CursorWidensToLine(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("q.sql", testSQL)

	// A collapsed cursor on line 3 formats the whole of line 3
	env.run("format", "selection", path,
		"--at", "3:5", "--use", "sqlmate.builtin.keywords")

	got, _ := os.ReadFile(path)
	text := string(got)
	env.contains(text, "select id, name")
	env.contains(text, "WHERE id = 1")
}

func TestFormatSelection_RequiresRange(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("q.sql", testSQL)

	_, err := env.runErr("format", "selection", path, "--use", "1")
	if err == nil {
		t.Error("selection without --lines/--at = nil, want error")
	}
}

func TestFormat_UnknownDialectRefused(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("notes.txt", "hello\n")

	// No providers apply to .txt, so there is nothing to pick
	out, err := env.runErr("format", "document", path)
	if err == nil {
		t.Errorf("format(.txt) = nil, want error; output: %s", out)
	}
	if !strings.Contains(out, "provider") {
		t.Errorf("error should mention providers: %s", out)
	}
}

func TestFormat_PreservesCRLF(t *testing.T) {
	env := newTestEnv(t)
	path := env.write("q.sql", "select 1\r\nfrom t\r\n")

	env.run("format", "document", path, "--use", "sqlmate.builtin.keywords")

	got, _ := os.ReadFile(path)
	env.contains(string(got), "SELECT 1\r\nFROM t\r\n")
}
