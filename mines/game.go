package mines

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

// Game is a single minesweeper session. A new game is started by
// constructing a new Game; an existing one is never reset.
//
// Game is not safe for concurrent use.
type Game struct {
	params             GameParams
	cells              []Cell
	status             Status
	startTime, endTime time.Time
	remaining          int // safe cells still closed
}

// NewGame places params.MineCount mines uniformly at random. A nil r is
// replaced with a generator seeded from the clock.
func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = createRand()
	}
	g := newGame(params, params.placeMines(r))
	Log.WithField("seed", params.Seed()).Debug("new random game")
	return g, nil
}

// NewGameWithMines places mines exactly at the given points. Repeated
// points count once; a point off the board is an [ErrInvalidArgument].
func NewGameWithMines(rows, cols int, mines []Point) (*Game, error) {
	params := GameParams{Rows: rows, Cols: cols}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	grid := make([]bool, rows*cols)
	for _, m := range mines {
		if !params.PointInBounds(m) {
			return nil, fmt.Errorf(
				"%w: mine at (%d, %d) is off the %dx%d board",
				ErrInvalidArgument, m.Row, m.Col, rows, cols,
			)
		}
		if i := params.index(m); !grid[i] {
			grid[i] = true
			params.MineCount++
		}
	}
	g := newGame(params, grid)
	Log.WithField("seed", params.Seed()).Debug("new game with explicit mines")
	return g, nil
}

func newGame(params GameParams, grid []bool) *Game {
	return &Game{
		params:    params,
		cells:     params.buildCells(grid),
		status:    NotStarted,
		remaining: params.Rows*params.Cols - params.MineCount,
	}
}

func (g *Game) Params() GameParams {
	return g.params
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) RemainingSafeCells() int {
	return g.remaining
}

func (g *Game) Cell(p Point) (Cell, error) {
	if !g.params.PointInBounds(p) {
		return Cell{}, g.outOfBounds(p)
	}
	return g.cells[g.params.index(p)], nil
}

// GameTime returns the elapsed play time in seconds. It is live while the
// game is in progress and frozen once it is over.
func (g *Game) GameTime() float64 {
	switch g.status {
	case NotStarted:
		return 0
	case InProgress:
		return now().Sub(g.startTime).Seconds()
	case Won, Lost:
		return g.endTime.Sub(g.startTime).Seconds()
	default:
		panic(AssertionError{fmt.Sprintf("invalid status %d", int8(g.status))})
	}
}

func (g *Game) outOfBounds(p Point) error {
	return fmt.Errorf(
		"%w: (%d, %d) on a %dx%d board",
		ErrOutOfBounds, p.Row, p.Col, g.params.Rows, g.params.Cols,
	)
}

// fire applies e to the status machine and stamps the clock on entering
// and leaving play. It reports whether the event was accepted.
func (g *Game) fire(e event) bool {
	from := g.status
	to, ok := from.next(e)
	if !ok {
		return false
	}
	if to == from {
		return true
	}

	g.status = to
	t := now()
	if from == NotStarted {
		g.startTime = t
	}
	if to.Ended() {
		g.endTime = t
	}

	Log.WithFields(logrus.Fields{
		"event": e,
		"from":  from.String(),
		"to":    to.String(),
	}).Debug("game status changed")
	return true
}

func (g *Game) OpenCell(p Point) error {
	if !g.params.PointInBounds(p) {
		return g.outOfBounds(p)
	}
	if !g.fire(move) {
		return nil
	}
	g.open(p)
	return nil
}

func (g *Game) open(p Point) {
	c := &g.cells[g.params.index(p)]
	if c.Revealed || c.Flagged {
		return
	}

	if c.Mine {
		/* keep the mine that went off visible */
		c.Revealed = true
		g.fire(detonate)
		return
	}

	if c.blank() {
		g.flood(p)
	} else {
		g.reveal(c)
	}

	if g.remaining == 0 {
		g.fire(cleared)
	}
}

func (g *Game) reveal(c *Cell) {
	c.Revealed = true
	c.Flagged = false
	g.remaining--
	if g.remaining < 0 {
		panic(AssertionError{"remaining safe cell count went negative"})
	}
}

/*
flood opens the blank cell at seed and then works through a FIFO queue of
opened blank cells, opening every closed safe neighbour. Flags on those
neighbours are dropped. Blank neighbours join the queue; numbered ones stop
the flood.
*/
func (g *Game) flood(seed Point) {
	g.reveal(&g.cells[g.params.index(seed)])
	queue := []Point{seed}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range g.params.neighbours(cur) {
			c := &g.cells[g.params.index(n)]
			if c.Mine || c.Revealed {
				continue
			}
			g.reveal(c)
			if c.blank() {
				queue = append(queue, n)
			}
		}
	}
}

// MarkCell toggles the flag on a closed cell. Open cells cannot be flagged.
func (g *Game) MarkCell(p Point) error {
	if !g.params.PointInBounds(p) {
		return g.outOfBounds(p)
	}
	if !g.fire(move) {
		return nil
	}
	c := &g.cells[g.params.index(p)]
	if !c.Revealed {
		c.Flagged = !c.Flagged
	}
	return nil
}

// ChordCell opens every closed, unflagged neighbour of an open numbered
// cell once the flags around it match its number.
func (g *Game) ChordCell(p Point) error {
	if !g.params.PointInBounds(p) {
		return g.outOfBounds(p)
	}
	c := g.cells[g.params.index(p)]
	if g.status != InProgress || !c.Revealed || c.Mine || c.Adjacent == 0 {
		return nil
	}

	flagged := 0
	closed := make([]Point, 0, len(neighbourhood))
	for _, n := range g.params.neighbours(p) {
		switch nc := g.cells[g.params.index(n)]; {
		case nc.Flagged:
			flagged++
		case !nc.Revealed:
			closed = append(closed, n)
		}
	}
	if flagged != c.Adjacent {
		return nil
	}

	for _, n := range closed {
		g.open(n)
		if g.status.Ended() {
			break
		}
	}
	return nil
}

// Forfeit ends a game that is not over yet as lost.
func (g *Game) Forfeit() {
	g.fire(forfeit)
}

func (g *Game) RenderField() Field {
	ended := g.status.Ended()
	field := make(Field, g.params.Rows)
	row := make([]byte, g.params.Cols)
	for r := range g.params.Rows {
		for c := range g.params.Cols {
			row[c] = g.cells[r*g.params.Cols+c].Glyph(ended)
		}
		field[r] = string(row)
	}
	return field
}
