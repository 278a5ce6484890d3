package builtin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywords(t *testing.T) {
	k := &Keywords{}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"basic statement",
			"select id from users where id = 1",
			"SELECT id FROM users WHERE id = 1",
		},
		{
			"string literals untouched",
			"select 'select from' from t",
			"SELECT 'select from' FROM t",
		},
		{
			"escaped quote in literal",
			"select 'it''s from here' from t",
			"SELECT 'it''s from here' FROM t",
		},
		{
			"line comment untouched",
			"select 1 -- select from where\nfrom t",
			"SELECT 1 -- select from where\nFROM t",
		},
		{
			"block comment untouched",
			"select /* from where */ 1 from t",
			"SELECT /* from where */ 1 FROM t",
		},
		{
			"bracketed identifier untouched",
			"select [from] from t",
			"SELECT [from] FROM t",
		},
		{
			"keyword inside identifier untouched",
			"select fromage, user_select from t",
			"SELECT fromage, user_select FROM t",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := k.FormatDocument(context.Background(), tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWhitespace(t *testing.T) {
	w := &Whitespace{}

	t.Run("trims trailing whitespace", func(t *testing.T) {
		got, err := w.FormatDocument(context.Background(), "SELECT 1  \nFROM t\t\n")
		require.NoError(t, err)
		assert.Equal(t, "SELECT 1\nFROM t\n", got)
	})

	t.Run("collapses blank runs", func(t *testing.T) {
		got, err := w.FormatDocument(context.Background(), "SELECT 1\n\n\n\nFROM t")
		require.NoError(t, err)
		assert.Equal(t, "SELECT 1\n\nFROM t", got)
	})

	t.Run("range text", func(t *testing.T) {
		got, err := w.FormatRange(context.Background(), "WHERE id = 1   ")
		require.NoError(t, err)
		assert.Equal(t, "WHERE id = 1", got)
	})
}
