package textio

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/game"
)

const clearCmd = "clear"

// Format renders a snapshot as text: generation header, per-player counts, the grid,
// a blank line, then the outcome message when the game is over
func Format(s game.Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generation #%d\n", s.Generation)
	fmt.Fprintf(&sb, "Player 1 Cells: %d\n", s.Player1Count)
	fmt.Fprintf(&sb, "Player 2 Cells: %d\n", s.Player2Count)
	for x := range s.Rows {
		for y := range s.Cols {
			sb.WriteRune(s.At(x, y).Rune())
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(s.Message)
	return sb.String()
}

// Render writes the text form of s to w
func Render(w io.Writer, s game.Snapshot) error {
	if _, err := fmt.Fprintln(w, Format(s)); err != nil {
		return errors.Wrapf(err, "[Render] failed to write generation %d", s.Generation)
	}
	return nil
}

// TerminalRenderer writes generations to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the snapshot
func (r *TerminalRenderer) Display(s game.Snapshot) error {
	return Render(r.Out, s)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
