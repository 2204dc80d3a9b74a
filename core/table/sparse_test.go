package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseParse(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []Record
	}{
		{
			name:  "blank middle cell",
			lines: []string{"col1      col2      col3", "v1                  v3"},
			want:  []Record{rec("col1", "v1", "col2", nil, "col3", "v3")},
		},
		{
			name: "blank cells and embedded spaces",
			lines: []string{
				"col1         col2      col3      col4          col5",
				"apple        orange              fuzzy peach   my favorite fruits",
				"green beans            celery    spinach       my favorite veggies",
				"chicken      beef                brown eggs    my favorite proteins",
			},
			want: []Record{
				rec("col1", "apple", "col2", "orange", "col3", nil, "col4", "fuzzy peach", "col5", "my favorite fruits"),
				rec("col1", "green beans", "col2", nil, "col3", "celery", "col4", "spinach", "col5", "my favorite veggies"),
				rec("col1", "chicken", "col2", "beef", "col3", nil, "col4", "brown eggs", "col5", "my favorite proteins"),
			},
		},
		{
			name:  "cell wider than its label",
			lines: []string{"name   size  used", "c  toolong 9    "},
			want:  []Record{rec("name", "c", "size", "toolong 9", "used", nil)},
		},
		{
			name:  "line shorter than header",
			lines: []string{"col1      col2      col3", "v1"},
			want:  []Record{rec("col1", "v1", "col2", nil, "col3", nil)},
		},
		{
			name:  "single character line",
			lines: []string{"a b c", "x"},
			want:  []Record{rec("a", "x", "b", nil, "c", nil)},
		},
		{
			name:  "single column",
			lines: []string{"description", "  some text  "},
			want:  []Record{rec("description", "some text")},
		},
		{
			name:  "whitespace only row",
			lines: []string{"a    b", "      "},
			want:  []Record{rec("a", nil, "b", nil)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SparseParse(tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for _, r := range got {
				assert.Len(t, r, len(tt.want[0]))
			}
		})
	}
}

// Drifted rows are pinned to the output existing consumers already see: the
// sentinel lands on offset 0 and consumes the first character, the leading
// column goes null and later columns shift.
func TestSparseParse_AlignmentDriftGolden(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  Record
		drift []Irregularity
	}{
		{
			name:  "leading cell overruns every gap",
			lines: []string{"col1      col2      col3", "abcdefghij xyz           x"},
			want:  rec("col1", nil, "col2", "bcdefghij xyz", "col3", "x"),
			drift: []Irregularity{{Kind: KindAlignmentDrift, Line: 0, Column: "col1"}},
		},
		{
			name:  "leading cell overruns its anchor",
			lines: []string{"name   size  used", "toolongvalue  9    "},
			want:  rec("name", nil, "size", "oolongvalue", "used", "9"),
			drift: []Irregularity{{Kind: KindAlignmentDrift, Line: 0, Column: "name"}},
		},
		{
			name:  "row without any whitespace",
			lines: []string{"col1      col2      col3", "abcdefghijklmnopqrstuvwxyz"},
			want:  rec("col1", nil, "col2", "bcdefghijklmnopqrstuvwxyz", "col3", nil),
			drift: []Irregularity{
				{Kind: KindAlignmentDrift, Line: 0, Column: "col1"},
				{Kind: KindAlignmentDrift, Line: 0, Column: "col2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []Irregularity
			got, err := SparseParse(tt.lines, WithObserver(func(ir Irregularity) {
				seen = append(seen, ir)
			}))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
			assert.ElementsMatch(t, tt.drift, seen)
		})
	}
}

func TestBoundaries(t *testing.T) {
	spec, err := AnalyzeHeader("col1      col2      col3")
	require.NoError(t, err)

	tests := []struct {
		name string
		line string
		want []int
	}{
		{name: "aligned", line: "v1        v2        v3", want: []int{9, 19}},
		{name: "blank middle", line: "v1                  v3", want: []int{9, 19}},
		{name: "scan back to gap", line: "v1       long2     v3", want: []int{8, 18}},
		{name: "short line", line: "v1", want: []int{2, 2}},
		{name: "empty line", line: "", want: []int{0, 0}},
		{name: "no gap", line: "abcdefghijklmnopqrstuvwxyz", want: []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Boundaries(spec, tt.line))
		})
	}
}

func TestBoundaries_IsPure(t *testing.T) {
	spec, err := AnalyzeHeader("a    b    c")
	require.NoError(t, err)
	before := spec.Anchors()

	line := "xxxxxxxxxxxxxxx"
	first := Boundaries(spec, line)
	second := Boundaries(spec, line)

	assert.Equal(t, first, second)
	assert.Equal(t, before, spec.Anchors())
}

func TestSplitAtBoundaries(t *testing.T) {
	names := []string{"a", "b", "c"}

	got := SplitAtBoundaries(names, "x  y  z", []int{1, 4}, DefaultDelimiter)
	assert.Equal(t, rec("a", "x", "b", "y", "c", "z"), got)

	got = SplitAtBoundaries(names, "x", []int{1, 1}, DefaultDelimiter)
	assert.Equal(t, rec("a", "x", "b", nil, "c", nil), got)
}

func TestSparseParse_Delimiter(t *testing.T) {
	header := "name   size  used"

	t.Run("default absent from input", func(t *testing.T) {
		lines := []string{header, "a      1     2"}
		def, err := SparseParse(lines)
		require.NoError(t, err)
		custom, err := SparseParse(lines, WithDelimiter('|'))
		require.NoError(t, err)

		assert.Equal(t, []Record{rec("name", "a", "size", "1", "used", "2")}, def)
		assert.Equal(t, def, custom)
	})

	t.Run("default collides with data", func(t *testing.T) {
		lines := []string{header, "x\u2063y    1     2"}

		corrupted, err := SparseParse(lines)
		require.NoError(t, err)
		assert.Equal(t, []Record{rec("name", "x", "size", "y", "used", "1    \u20632")}, corrupted)

		clean, err := SparseParse(lines, WithDelimiter('|'))
		require.NoError(t, err)
		assert.Equal(t, []Record{rec("name", "x\u2063y", "size", "1", "used", "2")}, clean)
	})
}

func TestSparseParseRows_SharedSpec(t *testing.T) {
	spec, err := AnalyzeHeader("col1      col2      col3")
	require.NoError(t, err)

	rows := []string{"a         b         c", "d                   f"}
	done := make(chan []Record, 4)
	for i := 0; i < 4; i++ {
		go func() { done <- SparseParseRows(spec, rows) }()
	}
	for i := 0; i < 4; i++ {
		got := <-done
		assert.Equal(t, []Record{
			rec("col1", "a", "col2", "b", "col3", "c"),
			rec("col1", "d", "col2", nil, "col3", "f"),
		}, got)
	}
}
