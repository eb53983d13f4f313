package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Not started", NotStarted.String())
	assert.Equal(t, "In progress", InProgress.String())
	assert.Equal(t, "Won", Won.String())
	assert.Equal(t, "Lose", Lost.String())

	assert.PanicsWithValue(t, AssertionError{"invalid status 9"}, func() {
		_ = Status(9).String()
	})
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		from Status
		e    event
		to   Status
		ok   bool
	}{
		{NotStarted, move, InProgress, true},
		{NotStarted, forfeit, Lost, true},
		{NotStarted, detonate, NotStarted, false},
		{NotStarted, cleared, NotStarted, false},
		{InProgress, move, InProgress, true},
		{InProgress, detonate, Lost, true},
		{InProgress, cleared, Won, true},
		{InProgress, forfeit, Lost, true},
		{Won, move, Won, false},
		{Won, detonate, Won, false},
		{Won, forfeit, Won, false},
		{Lost, move, Lost, false},
		{Lost, cleared, Lost, false},
	}

	for _, test := range tests {
		to, ok := test.from.next(test.e)
		assert.Equal(t, test.to, to, "%s on %s", test.from, test.e)
		assert.Equal(t, test.ok, ok, "%s on %s", test.from, test.e)
	}

	assert.Panics(t, func() { Status(-1).next(move) })
}

func TestCorruptStatusPanics(t *testing.T) {
	g := mustGame(t, 1, 1)
	g.status = Status(42)
	assert.Panics(t, func() { g.GameTime() })
	assert.Panics(t, func() { g.OpenCell(Point{0, 0}) })
}
