package puzzle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const plusNano = `# 5x5 plus sign
5x5
Rows:
1
1
5
1
1
Cols:
1
1
5
1
1
Done
`

func TestParse_Plus(t *testing.T) {
	p, err := Parse(strings.NewReader(plusNano))
	require.NoError(t, err)

	want := &Puzzle{
		Rows:     5,
		Cols:     5,
		RowHints: [][]int{{1}, {1}, {5}, {1}, {1}},
		ColHints: [][]int{{1}, {1}, {5}, {1}, {1}},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("puzzle mismatch (-want +got):\n%s", diff)
	}
}

// TestParse_HintlessLines: inside the Rows/Cols sections an empty line and
// a literal '0' both mean "no hints on this line".
func TestParse_HintlessLines(t *testing.T) {
	in := "3x2\nRows:\n2\n\n0\nCols:\n1\n1\nDone\n"
	p, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	want := [][]int{{2}, {}, {}}
	if diff := cmp.Diff(want, p.RowHints); diff != "" {
		t.Errorf("row hints mismatch (-want +got):\n%s", diff)
	}
}

// TestParse_Laxities: comment styles, comma/tab separators, leading blank
// lines, case-insensitive headers, and trailing content after Done.
func TestParse_Laxities(t *testing.T) {
	in := strings.Join([]string{
		"",
		"# hash comment",
		"; semicolon comment",
		"// slash comment",
		"  2 x 2  ",
		"",
		"ROWS:",
		"1,1",
		"1\t1",
		"columns:",
		"2",
		"2",
		"done",
		"anything after the sentinel is ignored",
	}, "\n")

	p, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows)
	require.Equal(t, 2, p.Cols)
	require.Equal(t, [][]int{{1, 1}, {1, 1}}, p.RowHints)
	require.Equal(t, [][]int{{2}, {2}}, p.ColHints)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		// wantLine is the 1-based line number the error must report.
		wantLine string
	}{
		{
			name:     "BadSize",
			in:       "5by5\nRows:\n",
			wantErr:  ErrBadDimensions,
			wantLine: "line 1",
		},
		{
			name:     "ZeroDimension",
			in:       "0x5\nRows:\n",
			wantErr:  ErrBadDimensions,
			wantLine: "line 1",
		},
		{
			name:     "MissingRowsHeader",
			in:       "2x2\n1\n1\nCols:\n1\n1\nDone\n",
			wantErr:  ErrBadHeader,
			wantLine: "line 2",
		},
		{
			name:     "MissingColsHeader",
			in:       "2x2\nRows:\n1\n1\n1\n1\nDone\n",
			wantErr:  ErrBadHeader,
			wantLine: "line 5",
		},
		{
			name:     "NegativeHint",
			in:       "2x2\nRows:\n-1\n1\nCols:\n1\n1\nDone\n",
			wantErr:  ErrBadHint,
			wantLine: "line 3",
		},
		{
			name:     "JunkHint",
			in:       "2x2\nRows:\n1\nfoo\nCols:\n1\n1\nDone\n",
			wantErr:  ErrBadHint,
			wantLine: "line 4",
		},
		{
			name:     "TruncatedBeforeDone",
			in:       "2x2\nRows:\n1\n1\nCols:\n1\n1\n",
			wantErr:  ErrMissingDone,
			wantLine: "line 7",
		},
		{
			name:     "EmptyInput",
			in:       "",
			wantErr:  ErrMissingDone,
			wantLine: "line 0",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.wantErr)
			require.Contains(t, err.Error(), tc.wantLine)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plus.nano")
	require.NoError(t, os.WriteFile(path, []byte(plusNano), 0o644))

	p, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 5, p.Rows)

	_, err = ParseFile(filepath.Join(dir, "absent.nano"))
	require.Error(t, err)

	// Parse errors carry the file path for context.
	bad := filepath.Join(dir, "bad.nano")
	require.NoError(t, os.WriteFile(bad, []byte("not-a-size\n"), 0o644))
	_, err = ParseFile(bad)
	require.ErrorIs(t, err, ErrBadDimensions)
	require.Contains(t, err.Error(), "bad.nano")
}
