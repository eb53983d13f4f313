package mines

import (
	"hash/maphash"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// now is the wall clock read at game start, game end and by live time queries.
var now = time.Now

// Point is a (row, col) coordinate on the board.
type Point struct {
	Row, Col int
}

// offsets of the 8-neighbour Moore neighbourhood
var neighbourhood = [8]Point{
	{-1, -1}, {-1, 0}, {-1, +1},
	{0, -1}, {0, +1},
	{+1, -1}, {+1, 0}, {+1, +1},
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		uint64(now().UnixNano()), new(maphash.Hash).Sum64(),
	))
}
