package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeHeader(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		names   []string
		anchors []int
	}{
		{
			name:    "single spaces",
			line:    "col1 col2 col3",
			names:   []string{"col1", "col2", "col3"},
			anchors: []int{4, 9},
		},
		{
			name:    "padded columns",
			line:    "col1      col2      col3",
			names:   []string{"col1", "col2", "col3"},
			anchors: []int{9, 19},
		},
		{
			name:    "leading indent keeps absolute offsets",
			line:    "  unit   load",
			names:   []string{"unit", "load"},
			anchors: []int{7},
		},
		{
			name:    "tab separated",
			line:    "a\tb",
			names:   []string{"a", "b"},
			anchors: []int{1},
		},
		{
			name:    "single column",
			line:    "description",
			names:   []string{"description"},
			anchors: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := AnalyzeHeader(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.names, spec.Names())
			assert.Equal(t, tt.anchors, spec.Anchors())
			assert.Equal(t, len(tt.names), spec.Len())
			assert.Equal(t, Unbounded, spec.Columns[spec.Len()-1].Anchor)
		})
	}
}

func TestAnalyzeHeader_RuneOffsets(t *testing.T) {
	spec, err := AnalyzeHeader("größe  name")
	require.NoError(t, err)

	assert.Equal(t, 0, spec.Columns[0].Start)
	assert.Equal(t, 7, spec.Columns[1].Start)
	assert.Equal(t, 6, spec.Columns[0].Anchor)
}

func TestAnalyzeHeader_Malformed(t *testing.T) {
	for _, line := range []string{"", " ", "   \t  "} {
		_, err := AnalyzeHeader(line)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedHeader), "line %q", line)
	}
}

func TestParse_NoLines(t *testing.T) {
	_, err := SimpleParse(nil)
	assert.ErrorIs(t, err, ErrMalformedHeader)

	_, err = SparseParse([]string{})
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestParse_WhitespaceHeader(t *testing.T) {
	_, err := SimpleParse([]string{"    ", "a b c"})
	assert.ErrorIs(t, err, ErrMalformedHeader)

	_, err = SparseParse([]string{"\t", "a b c"})
	assert.ErrorIs(t, err, ErrMalformedHeader)
}
