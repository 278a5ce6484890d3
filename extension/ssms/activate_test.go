package ssms

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Resolution state lives on the extension and is assigned once: every call
// after the first returns the same cached result.
func TestResolveToolCachesResult(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("non-windows platform gate")
	}

	e := &Extension{}
	first := e.resolveTool(context.Background())
	require.False(t, first.OK())
	assert.ErrorIs(t, first.Err, ErrWrongPlatform)

	second := e.resolveTool(context.Background())
	assert.Equal(t, first, second)
}

// A fresh extension value carries no resolution state from another.
func TestResolveToolPerExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("non-windows platform gate")
	}

	a := &Extension{}
	_ = a.resolveTool(context.Background())

	b := &Extension{}
	assert.False(t, b.resolved.OK())
	res := b.resolveTool(context.Background())
	assert.ErrorIs(t, res.Err, ErrWrongPlatform)
}
