package model

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrBadSymbol is returned when an encoded grid contains an unknown cell symbol
var ErrBadSymbol = errors.New("unknown cell symbol")

// ErrBadCodec is returned by NewCodec for unusable delimiter/symbol combinations
var ErrBadCodec = errors.New("invalid codec")

// Codec converts between grids and their single-line text encoding, e.g. "010,111"
type Codec struct {
	RowDelimiter string
	Alive        byte
	Dead         byte
}

// DefaultCodec uses ',' between rows, '1' for alive and '0' for dead
func DefaultCodec() Codec {
	return Codec{RowDelimiter: ",", Alive: '1', Dead: '0'}
}

// NewCodec builds a Codec from string settings, as found in configuration
func NewCodec(delim, alive, dead string) (Codec, error) {
	switch {
	case delim == "":
		return Codec{}, errors.Wrap(ErrBadCodec, "[NewCodec] row delimiter is empty")
	case len(alive) != 1 || len(dead) != 1:
		return Codec{}, errors.Wrapf(ErrBadCodec, "[NewCodec] symbols must be one byte, got %q and %q", alive, dead)
	case alive == dead:
		return Codec{}, errors.Wrapf(ErrBadCodec, "[NewCodec] alive and dead symbols are both %q", alive)
	case strings.Contains(delim, alive) || strings.Contains(delim, dead):
		return Codec{}, errors.Wrapf(ErrBadCodec, "[NewCodec] row delimiter %q contains a cell symbol", delim)
	}
	return Codec{RowDelimiter: delim, Alive: alive[0], Dead: dead[0]}, nil
}

// Parse decodes s into a new Grid. Every row must be the length of the first.
func (c Codec) Parse(s string) (*Grid, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.Wrap(ErrEmptyGrid, "[Parse] input is empty")
	}

	segments := strings.Split(s, c.RowDelimiter)
	cols := len(segments[0])
	if cols == 0 {
		return nil, errors.Wrap(ErrEmptyGrid, "[Parse] first row is empty")
	}

	cells := make([][]bool, len(segments))
	for i, seg := range segments {
		if len(seg) != cols {
			return nil, errors.Wrapf(ErrRaggedGrid, "[Parse] row %d has %d cells, want %d", i, len(seg), cols)
		}
		cells[i] = make([]bool, cols)
		for j := 0; j < cols; j++ {
			switch seg[j] {
			case c.Alive:
				cells[i][j] = true
			case c.Dead:
			default:
				return nil, errors.Wrapf(ErrBadSymbol, "[Parse] %q at row %d, col %d", seg[j], i, j)
			}
		}
	}
	return NewGrid(cells)
}

// Encode returns the grid in the same format Parse accepts
func (c Codec) Encode(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + len(c.RowDelimiter)))
	for i, row := range g.cells {
		if i > 0 {
			sb.WriteString(c.RowDelimiter)
		}
		for _, alive := range row {
			if alive {
				sb.WriteByte(c.Alive)
			} else {
				sb.WriteByte(c.Dead)
			}
		}
	}
	return sb.String()
}
