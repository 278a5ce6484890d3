package diff

import (
	"strings"
	"testing"
)

func TestCompute(t *testing.T) {
	t.Run("identical inputs", func(t *testing.T) {
		r := Compute("SELECT 1\n", "SELECT 1\n", "a", "b")
		if !r.Empty() {
			t.Errorf("Compute(equal) = %q, want empty", r.Diff)
		}
	})

	t.Run("changed line", func(t *testing.T) {
		r := Compute("select 1\nfrom t\n", "SELECT 1\nFROM t\n", "q.sql", "q.sql (formatted)")
		if r.Empty() {
			t.Fatal("Compute(changed) = empty, want diff")
		}
		if !strings.Contains(r.Diff, "- select 1") {
			t.Errorf("diff missing deletion: %q", r.Diff)
		}
		if !strings.Contains(r.Diff, "+ SELECT 1") {
			t.Errorf("diff missing insertion: %q", r.Diff)
		}
	})

	t.Run("long equal runs collapse", func(t *testing.T) {
		var lines []string
		for range 20 {
			lines = append(lines, "SELECT 1")
		}
		oldText := strings.Join(lines, "\n") + "\nold tail\n"
		newText := strings.Join(lines, "\n") + "\nnew tail\n"

		r := Compute(oldText, newText, "a", "b")
		if !strings.Contains(r.Diff, "  ...") {
			t.Errorf("long equal section not collapsed: %q", r.Diff)
		}
	})
}

func TestFormat(t *testing.T) {
	r := Compute("old\n", "new\n", "before", "after")

	plain := r.Format(false)
	if !strings.Contains(plain, "--- before") || !strings.Contains(plain, "+++ after") {
		t.Errorf("Format(false) missing header: %q", plain)
	}
	if strings.Contains(plain, "\033[") {
		t.Errorf("Format(false) contains ANSI codes: %q", plain)
	}

	colour := r.Format(true)
	if !strings.Contains(colour, "\033[31m") || !strings.Contains(colour, "\033[32m") {
		t.Errorf("Format(true) missing colours: %q", colour)
	}
}
