package textio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/model"
)

func TestParseGrid(t *testing.T) {
	input := "\n  3 4  \n\n.1..\n  ..2.\t\n\n1..2\n\n"
	g, err := ParseGrid(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g.GetRows() != 3 || g.GetCols() != 4 {
		t.Fatalf("grid is %dx%d, want 3x4", g.GetRows(), g.GetCols())
	}
	want := map[[2]int]model.Cell{
		{0, 1}: model.Player1,
		{1, 2}: model.Player2,
		{2, 0}: model.Player1,
		{2, 3}: model.Player2,
	}
	for x := range 3 {
		for y := range 4 {
			if got := g.Get(x, y); got != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d)=%v, want %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestParseGridErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
		line  string
	}{
		{"empty", "\n\n", ErrMissingHeader, ""},
		{"one_field", "3\n...", ErrInvalidHeader, "line 1"},
		{"three_fields", "1 2 3\n..", ErrInvalidHeader, "line 1"},
		{"bad_rows", "x 2\n..", ErrInvalidHeader, "'x'"},
		{"bad_cols", "2 y\n..", ErrInvalidHeader, "'y'"},
		{"zero_rows", "0 2\n", ErrInvalidHeader, "line 1"},
		{"huge_header", "1000000 1000000\n.\n", ErrInvalidHeader, "exceeds"},
		{"overflowing_header", "3037000500 3037000500\n.\n", ErrInvalidHeader, "exceeds"},
		{"short_row", "2 3\n...\n..\n", ErrRowWidth, "line 3"},
		{"long_row", "1 2\n\n...\n", ErrRowWidth, "line 3"},
		{"bad_char", "2 2\n..\n.x\n", ErrCellChar, "'x' at line 3"},
		{"too_few_rows", "3 2\n..\n..\n", ErrRowCount, "got 2 rows, want 3"},
		{"too_many_rows", "1 2\n..\n11\n", ErrRowCount, "line 3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseGrid(strings.NewReader(c.input))
			if errors.Cause(err) != c.want {
				t.Fatalf("err=%v, want %v", err, c.want)
			}
			if !strings.Contains(err.Error(), c.line) {
				t.Fatalf("err %q does not mention %q", err, c.line)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generation0.txt")
	if err := os.WriteFile(path, []byte("2 2\n12\n..\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	g, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if g.CountOf(model.Player1) != 1 || g.CountOf(model.Player2) != 1 {
		t.Fatal("unexpected cell counts")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file err=%v", err)
	}
}
