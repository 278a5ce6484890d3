// run.go holds the pick-and-dispatch flow shared by the document and
// selection subcommands.
//
// The flow mirrors an editor "format with..." action: list providers,
// let the user pick one, run it. Exactly one formatterpick telemetry
// event is recorded per invocation, cancellation included.

package format

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jpl-au/sqlmate/cmd"
	"github.com/jpl-au/sqlmate/internal/diff"
	"github.com/jpl-au/sqlmate/internal/document"
	"github.com/jpl-au/sqlmate/internal/formatter"
	"github.com/jpl-au/sqlmate/internal/pick"
	"github.com/jpl-au/sqlmate/internal/render"
	"github.com/jpl-au/sqlmate/internal/telemetry"
)

// ErrTooFewProviders is returned when the picker would offer fewer than two
// entries. Matching an editor's enablement rule: with one provider there is
// nothing to pick, run that formatter directly through its own tooling.
var ErrTooFewProviders = errors.New("picker needs at least two applicable providers")

// pickNone is the telemetry value recorded when no provider was chosen.
const pickNone = "none"

// invocation carries one format run from provider listing to dispatch.
type invocation struct {
	mode      string // "document" or "range"
	providers []formatter.Provider
	sources   []string // telemetry identifiers, parallel to providers
}

func newInvocation(mode string, providers []formatter.Provider) invocation {
	inv := invocation{mode: mode, providers: providers}
	for _, p := range providers {
		inv.sources = append(inv.sources, formatter.SourceOf(p))
	}
	return inv
}

// items builds picker entries. Index is the provider's position in the
// resolved list; Detail carries the raw source so the reveal action can
// report "unknown" for providers without one.
func (inv invocation) items() []pick.Item {
	out := make([]pick.Item, len(inv.providers))
	for i, p := range inv.providers {
		out[i] = pick.Item{Index: i, Label: formatter.DisplayName(p), Detail: p.Source()}
	}
	return out
}

// record writes the single formatterpick event for this invocation.
func (inv invocation) record(picked string) {
	telemetry.Event("formatterpick").
		Prop("mode", inv.mode).
		Prop("extensions", inv.sources).
		Prop("pick", picked).
		Write(nil)
}

// choose resolves the provider for this invocation: via --use when given,
// otherwise interactively. A nil return with nil error means cancelled; the
// telemetry event has been recorded either way.
func (inv invocation) choose(ctx context.Context, picker pick.Picker, use string) (formatter.Provider, error) {
	if use != "" {
		p, err := inv.lookup(use)
		if err != nil {
			return nil, err
		}
		inv.record(formatter.SourceOf(p))
		return p, nil
	}

	item, err := picker.Pick(ctx, "Format with", inv.items())
	if err != nil {
		return nil, err
	}
	if item == nil {
		inv.record(pickNone)
		return nil, nil
	}

	// Dispatch strictly by the index captured at listing time
	p := inv.providers[item.Index]
	inv.record(formatter.SourceOf(p))
	return p, nil
}

// lookup resolves a --use value: a 1-based list position, a source
// identifier, or a display name.
func (inv invocation) lookup(use string) (formatter.Provider, error) {
	if n, err := strconv.Atoi(use); err == nil {
		if n < 1 || n > len(inv.providers) {
			return nil, fmt.Errorf("provider %d out of range (1-%d)", n, len(inv.providers))
		}
		return inv.providers[n-1], nil
	}
	for _, p := range inv.providers {
		if p.Source() == use || formatter.DisplayName(p) == use {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no provider matching %q", use)
}

// list prints the providers without picking, for --list.
func (inv invocation) list() {
	labels := make([]string, len(inv.providers))
	for i, p := range inv.providers {
		labels[i] = formatter.DisplayName(p)
	}
	render.Providers(cmd.Out(), labels, inv.sources)
}

// apply writes or diffs the formatted content against the document.
func apply(doc *document.Document, formatted string, showDiff bool) error {
	if showDiff {
		d := diff.Compute(doc.Text(), formatted, doc.Path, doc.Path+" (formatted)")
		if d.Empty() {
			fmt.Fprintln(cmd.Out(), "no changes")
			return nil
		}
		fmt.Fprint(cmd.Out(), d.Format(true))
		return nil
	}
	if err := doc.Write(formatted); err != nil {
		return fmt.Errorf("write %s: %w", doc.Path, err)
	}
	fmt.Fprintf(cmd.Out(), "formatted %s\n", doc.Path)
	return nil
}
