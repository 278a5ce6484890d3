// terminal.go implements the interactive picker.
//
// Separated from pick.go to isolate terminal IO from the interface. The list
// goes to stderr so stdout stays clean for piping; the answer is read from
// stdin, which also makes the prompt scriptable (echo "2" | sqlmate ...).

package pick

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Terminal prompts on w and reads the selection from r.
// There is no timeout: the prompt waits until the user answers or closes
// stdin.
type Terminal struct {
	R io.Reader
	W io.Writer

	scanner *bufio.Scanner
}

// NewTerminal creates a picker on stdin/stderr.
func NewTerminal() *Terminal {
	return &Terminal{R: os.Stdin, W: os.Stderr}
}

// Pick displays a numbered list and reads the answer.
//
// Accepted answers:
//   - a number: select that entry
//   - ?N: show entry N's detail (the reveal action) and ask again -
//     this does not consume the pick
//   - q, empty line, or EOF: cancel
func (t *Terminal) Pick(ctx context.Context, prompt string, items []Item) (*Item, error) {
	if t.scanner == nil {
		t.scanner = bufio.NewScanner(t.R)
	}

	fmt.Fprintln(t.W, prompt)
	for i, it := range items {
		fmt.Fprintf(t.W, "  %d) %s\n", i+1, it.Label)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprintf(t.W, "Select 1-%d (?N for details, q to cancel): ", len(items))

		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading selection: %w", err)
			}
			return nil, nil // EOF = cancel
		}
		answer := strings.TrimSpace(t.scanner.Text())

		switch {
		case answer == "" || answer == "q" || answer == "Q":
			return nil, nil
		case strings.HasPrefix(answer, "?"):
			n, err := strconv.Atoi(answer[1:])
			if err != nil || n < 1 || n > len(items) {
				fmt.Fprintln(t.W, "invalid entry")
				continue
			}
			detail := items[n-1].Detail
			if detail == "" {
				detail = "unknown"
			}
			fmt.Fprintf(t.W, "  %s: %s\n", items[n-1].Label, detail)
		default:
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(items) {
				fmt.Fprintln(t.W, "invalid selection")
				continue
			}
			return &items[n-1], nil
		}
	}
}
