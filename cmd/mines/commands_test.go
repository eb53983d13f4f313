package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/mines"
)

func TestExecuteCommand(t *testing.T) {
	s, out := testSession(t, 2, 2, mines.Point{Row: 0, Col: 0})

	require.NoError(t, executeCommand(s, "o 1 1"))
	assert.Equal(t, "--\n-1\nIn progress (0.0s)\n", out.String())

	out.Reset()
	require.NoError(t, executeCommand(s, "  f   0 1 "))
	assert.Equal(t, "-?\n-1\n", out.String()[:6])

	out.Reset()
	require.NoError(t, executeCommand(s, "s"))
	assert.Contains(t, out.String(), "In progress")

	require.NoError(t, executeCommand(s, ""))
	assert.ErrorIs(t, executeCommand(s, "q"), errQuit)
}

func TestExecuteCommandErrors(t *testing.T) {
	s, _ := testSession(t, 2, 2, mines.Point{Row: 0, Col: 0})

	tests := []struct {
		name string
		line string
	}{
		{"unknown", "z"},
		{"too few args", "o 1"},
		{"too many args", "f 1 1 1"},
		{"bad row", "o a 1"},
		{"bad col", "o 1 b"},
		{"off the board", "o 2 0"},
		{"negative", "f -1 0"},
		{"bad seed", "n 3:3"},
		{"too many mines", "n 2:2:9"},
		{"bad pair", "n rows"},
		{"bad value", "n rows=x"},
		{"unknown key", "n depth=3"},
		{"bad layout rows", "n x 3"},
		{"bad layout mine", "n 3 3 1;1"},
		{"bad layout mine row", "n 3 3 a,1"},
		{"layout mine off the board", "n 3 3 3,0"},
		{"empty layout", "n 0 3"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Error(t, executeCommand(s, test.line))
		})
	}
	assert.Equal(t, mines.NotStarted, s.game.Status())

	err := executeCommand(s, "o 5 5")
	assert.ErrorIs(t, err, mines.ErrOutOfBounds)
}

func TestNewGameCommand(t *testing.T) {
	s, _ := testSession(t, 2, 2)

	require.NoError(t, executeCommand(s, "n"))
	assert.Equal(t, mines.GameParams{Rows: 9, Cols: 9, MineCount: 10}, s.game.Params())

	require.NoError(t, executeCommand(s, "n 4:5:6"))
	assert.Equal(t, mines.GameParams{Rows: 4, Cols: 5, MineCount: 6}, s.game.Params())

	require.NoError(t, executeCommand(s, "n rows=3 mines=2"))
	assert.Equal(t, mines.GameParams{Rows: 3, Cols: 9, MineCount: 2}, s.game.Params())

	require.NoError(t, executeCommand(s, "n cols=2 rows=1 mines=0"))
	assert.Equal(t, mines.GameParams{Rows: 1, Cols: 2, MineCount: 0}, s.game.Params())
	assert.Equal(t, mines.NotStarted, s.game.Status())

	assert.ErrorIs(t, executeCommand(s, "n rows=1 cols=1 mines=2"), mines.ErrInvalidArgument)
	assert.Equal(t, mines.GameParams{Rows: 1, Cols: 2, MineCount: 0}, s.game.Params())
}

func TestForfeitCommand(t *testing.T) {
	s, out := testSession(t, 2, 2, mines.Point{Row: 1, Col: 1})

	require.NoError(t, executeCommand(s, "x"))
	assert.Equal(t, mines.Lost, s.game.Status())
	assert.Contains(t, out.String(), "11\n1*\nLose")

	require.NoError(t, executeCommand(s, "o 0 0"))
	assert.Equal(t, mines.Lost, s.game.Status())
}

func TestNewGameWithMinesCommand(t *testing.T) {
	s, out := testSession(t, 2, 2)

	require.NoError(t, executeCommand(s, "n 3 3 2,2 2,2"))
	assert.Equal(t, mines.GameParams{Rows: 3, Cols: 3, MineCount: 1}, s.game.Params())
	assert.Equal(t, 8, s.game.RemainingSafeCells())

	out.Reset()
	require.NoError(t, executeCommand(s, "o 0 0"))
	assert.Equal(t, mines.Won, s.game.Status())
	assert.Contains(t, out.String(), "...\n.11\n.1*\nWon")

	require.NoError(t, executeCommand(s, "n 1 2"))
	assert.Equal(t, mines.GameParams{Rows: 1, Cols: 2, MineCount: 0}, s.game.Params())
}

func TestHelpCommand(t *testing.T) {
	s, out := testSession(t, 2, 2)

	require.NoError(t, executeCommand(s, "h"))
	for name := range commandNargs {
		assert.Contains(t, out.String(), "\n  "+name+" ", "command %s", name)
	}
}
