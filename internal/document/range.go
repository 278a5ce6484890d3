// range.go defines text ranges and the cursor-widening rule used by
// selection formatting.
//
// Separated from document.go to keep position arithmetic apart from file IO.

package document

import "fmt"

// Range addresses a span of text. Lines and columns are 1-based; EndCol is
// exclusive, so a full line of length n is [L,1 .. L,n+1].
type Range struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Empty reports whether the range is collapsed to a single position.
func (r Range) Empty() bool {
	return r.StartLine == r.EndLine && r.StartCol == r.EndCol
}

// String formats the range as "SL:SC-EL:EC".
func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.StartLine, r.StartCol, r.EndLine, r.EndCol)
}

// At returns a collapsed range at the given position.
func At(line, col int) Range {
	return Range{StartLine: line, StartCol: col, EndLine: line, EndCol: col}
}

// Lines returns a range covering whole lines start..end inclusive.
func (d *Document) Lines(start, end int) (Range, error) {
	if start < 1 || end > len(d.lines) || start > end {
		return Range{}, fmt.Errorf("%w: lines %d:%d of %d", ErrRangeOutOfBounds, start, end, len(d.lines))
	}
	return Range{
		StartLine: start,
		StartCol:  1,
		EndLine:   end,
		EndCol:    len(d.lines[end-1]) + 1,
	}, nil
}

// Widen expands a collapsed range to cover the full line containing it.
// A cursor at (L, c) on a line of length n becomes [L,1 .. L,n+1].
// Non-empty ranges are returned unchanged.
func (d *Document) Widen(r Range) (Range, error) {
	if !r.Empty() {
		return r, nil
	}
	line, err := d.Line(r.StartLine)
	if err != nil {
		return Range{}, err
	}
	return Range{
		StartLine: r.StartLine,
		StartCol:  1,
		EndLine:   r.StartLine,
		EndCol:    len(line) + 1,
	}, nil
}
