// registry.go implements the formatter provider registration system.
//
// Separated from formatter.go to isolate the global registry state and
// thread-safe access patterns. Built-in providers self-register during
// init(), before main() runs.
//
// Design: The registry uses panic-on-duplicate following database/sql.Register
// conventions. Registration order is preserved and is the order providers
// appear in the picker, so an index captured when listing remains valid for
// dispatch within the same process.

package formatter

import "sync"

type entry struct {
	provider Provider
	dialects map[string]bool // nil means all dialects
}

var (
	mu        sync.RWMutex
	registry  []entry
	names     = make(map[string]bool)
	fallbacks []DocumentFormatter
)

// Register adds a provider to the registry. Called from init() functions.
// The optional dialects restrict which documents the provider applies to;
// none means the provider applies everywhere.
//
// Panics on duplicate provider names: registration happens at init time and
// a duplicate indicates a programmer mistake, not a runtime condition.
func Register(p Provider, dialects ...string) {
	mu.Lock()
	defer mu.Unlock()

	name := p.Name()
	if names[name] {
		panic("formatter already registered: " + name)
	}
	names[name] = true

	var set map[string]bool
	if len(dialects) > 0 {
		set = make(map[string]bool, len(dialects))
		for _, d := range dialects {
			set[d] = true
		}
	}
	registry = append(registry, entry{provider: p, dialects: set})
}

// SetFallbacks installs the synthesized document formatters built from user
// configuration. They are appended after registered providers in document
// lists and never appear in range lists. Called once during extension init.
func SetFallbacks(fs []DocumentFormatter) {
	mu.Lock()
	defer mu.Unlock()
	fallbacks = fs
}

// dialectScoped is implemented by fallback formatters that restrict
// themselves to particular dialects.
type dialectScoped interface {
	Applies(dialect string) bool
}

// DocumentFormatters returns the ordered document formatters applicable to a
// dialect: registered providers in registration order, then configured
// fallbacks in configuration order.
func DocumentFormatters(dialect string) []DocumentFormatter {
	mu.RLock()
	defer mu.RUnlock()

	var out []DocumentFormatter
	for _, e := range registry {
		if !e.applies(dialect) {
			continue
		}
		if df, ok := e.provider.(DocumentFormatter); ok {
			out = append(out, df)
		}
	}
	for _, f := range fallbacks {
		if ds, ok := f.(dialectScoped); ok && !ds.Applies(dialect) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// RangeFormatters returns the ordered range formatters applicable to a
// dialect. Only genuinely registered providers qualify; there is no
// synthesized fallback list for ranges.
func RangeFormatters(dialect string) []RangeFormatter {
	mu.RLock()
	defer mu.RUnlock()

	var out []RangeFormatter
	for _, e := range registry {
		if !e.applies(dialect) {
			continue
		}
		if rf, ok := e.provider.(RangeFormatter); ok {
			out = append(out, rf)
		}
	}
	return out
}

func (e entry) applies(dialect string) bool {
	return e.dialects == nil || e.dialects[dialect]
}

// SourceOf returns the provider's source identifier, substituting "unknown"
// when the provider does not declare one.
func SourceOf(p Provider) string {
	if s := p.Source(); s != "" {
		return s
	}
	return "unknown"
}

// DisplayName returns the provider's display name, falling back to its
// source identifier when the name is empty.
func DisplayName(p Provider) string {
	if n := p.Name(); n != "" {
		return n
	}
	return SourceOf(p)
}
