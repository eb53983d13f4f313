package mines

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

type GameParams struct {
	Rows, Cols, MineCount int
}

func (p GameParams) Unpack() (rows int, cols int, mineCount int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

// ParseSeed reads the "rows:cols:mines" form produced by [GameParams.Seed].
func ParseSeed(seed string) (*GameParams, error) {
	pieces := strings.Split(seed, ":")
	if len(pieces) != 3 {
		return nil, fmt.Errorf(`%w: invalid game params seed "%s"`, ErrInvalidArgument, seed)
	}
	var values [3]int
	for i, piece := range pieces {
		v, err := strconv.Atoi(piece)
		if err != nil {
			return nil, fmt.Errorf(
				`%w: invalid game params seed "%s" (piece %d: %v)`,
				ErrInvalidArgument, seed, i, err,
			)
		}
		values[i] = v
	}
	p := &GameParams{Rows: values[0], Cols: values[1], MineCount: values[2]}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p GameParams) Validate() error {
	rows, cols, mineCount := p.Unpack()
	switch {
	case rows <= 0 || cols <= 0:
		return fmt.Errorf("%w: cannot create a %dx%d board", ErrInvalidArgument, rows, cols)
	case cols > math.MaxInt/rows:
		return fmt.Errorf("%w: a %dx%d board is too large", ErrInvalidArgument, rows, cols)
	case mineCount < 0:
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidArgument, mineCount)
	case mineCount > rows*cols:
		return fmt.Errorf(
			"%w: not enough space for %d mines on a %dx%d board",
			ErrInvalidArgument, mineCount, rows, cols,
		)
	}
	return nil
}

func (p GameParams) PointInBounds(pt Point) bool {
	return 0 <= pt.Row && pt.Row < p.Rows && 0 <= pt.Col && pt.Col < p.Cols
}

func (p GameParams) index(pt Point) int {
	return pt.Row*p.Cols + pt.Col
}

func (p GameParams) point(i int) Point {
	return Point{Row: i / p.Cols, Col: i % p.Cols}
}

// neighbours lists the in-bounds part of the Moore neighbourhood of pt.
// There is no wraparound.
func (p GameParams) neighbours(pt Point) []Point {
	res := make([]Point, 0, len(neighbourhood))
	for _, d := range neighbourhood {
		n := Point{Row: pt.Row + d.Row, Col: pt.Col + d.Col}
		if p.PointInBounds(n) {
			res = append(res, n)
		}
	}
	return res
}

/*
placeMines draws MineCount distinct cells. The candidates are kept in one
bucket per row; each draw picks a random bucket, then a random cell in it,
and removes that cell from the candidates. Emptied buckets are dropped, so
a cell can never be mined twice.
*/
func (p GameParams) placeMines(r *rand.Rand) []bool {
	rows, cols, mineCount := p.Unpack()
	grid := make([]bool, rows*cols)

	buckets := make([][]Point, rows)
	for row := range rows {
		buckets[row] = make([]Point, 0, cols)
		for col := range cols {
			buckets[row] = append(buckets[row], Point{Row: row, Col: col})
		}
	}

	for range mineCount {
		b := r.IntN(len(buckets))
		k := len(buckets[b]) - 1
		i := r.IntN(k + 1)
		grid[p.index(buckets[b][i])] = true
		buckets[b][i] = buckets[b][k]
		buckets[b] = buckets[b][:k]

		if k == 0 {
			last := len(buckets) - 1
			buckets[b] = buckets[last]
			buckets = buckets[:last]
		}
	}

	return grid
}

// buildCells lays out the board for the given mine grid and computes the
// adjacent mine count of every safe cell.
func (p GameParams) buildCells(grid []bool) []Cell {
	cells := make([]Cell, len(grid))
	for i := range cells {
		if grid[i] {
			cells[i].Mine = true
			continue
		}
		for _, n := range p.neighbours(p.point(i)) {
			if grid[p.index(n)] {
				cells[i].Adjacent++
			}
		}
	}
	return cells
}
