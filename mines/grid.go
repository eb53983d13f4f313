package mines

import "strings"

type Cell struct {
	Mine     bool
	Adjacent int // mines around the cell, 0 to 8; unused for mines
	Revealed bool
	Flagged  bool
}

func (c Cell) blank() bool {
	return !c.Mine && c.Adjacent == 0
}

/*
Glyph returns the character a cell is drawn with:

  - '*' a mine, once the game is over or when it was the one opened
  - '.' an open cell with no mines around it
  - '1' to '8' an open cell with that many mines around it
  - '-' a closed cell
  - '?' a closed, flagged cell

When ended is set every cell is drawn as if it were open and flags are
ignored.
*/
func (c Cell) Glyph(ended bool) byte {
	open := ended || c.Revealed
	switch {
	case open && c.Mine:
		return '*'
	case open && c.Adjacent == 0:
		return '.'
	case open:
		return '0' + byte(c.Adjacent)
	case c.Flagged:
		return '?'
	default:
		return '-'
	}
}

// Field is a rendered board, one string per row.
type Field []string

// Field implements [fmt.Stringer]
func (f Field) String() string {
	return strings.Join(f, "\n")
}
