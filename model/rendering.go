package model

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "1 "
	gridPosDead  = "0 "

	// DefaultBanner separates successive renderings
	DefaultBanner = "----------------------"
)

// Pretty renders the grid one row per line, each cell as a digit followed by a space
func Pretty(g *Grid) string {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				sb.WriteString(gridPosAlive)
			} else {
				sb.WriteString(gridPosDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrettyWithBanner renders the grid preceded by a banner line
func PrettyWithBanner(g *Grid, banner string) string {
	return banner + "\n" + Pretty(g)
}

// TerminalRenderer writes pretty renderings to a terminal or any other writer
type TerminalRenderer struct {
	Out    io.Writer
	Banner string
}

// Display renders the grid to the renderer's output, stdout by default
func (r *TerminalRenderer) Display(g *Grid) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	return DisplayTo(out, g, r.Banner)
}

// DisplayTo writes the pretty rendering of g to w, preceded by banner when it is non-empty
func DisplayTo(w io.Writer, g *Grid, banner string) error {
	text := Pretty(g)
	if banner != "" {
		text = PrettyWithBanner(g, banner)
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return errors.Wrap(err, "[DisplayTo] failed to write grid")
	}
	return nil
}
