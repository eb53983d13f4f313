package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/mines"
)

// session owns the game being played. Starting a new game swaps in a
// freshly built [mines.Game].
type session struct {
	game     *mines.Game
	defaults mines.GameParams
	rand     *rand.Rand // nil seeds every game from the clock
	out      io.Writer
}

func newSession(defaults mines.GameParams, r *rand.Rand, out io.Writer) (*session, error) {
	s := &session{defaults: defaults, rand: r, out: out}
	if err := s.newGame(defaults); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) newGame(params mines.GameParams) error {
	g, err := mines.NewGame(params, s.rand)
	if err != nil {
		return err
	}
	s.game = g
	log.WithField("seed", params.Seed()).Info("new game")
	return nil
}

func (s *session) newGameWithMines(rows, cols int, mine []mines.Point) error {
	g, err := mines.NewGameWithMines(rows, cols, mine)
	if err != nil {
		return err
	}
	s.game = g
	log.WithField("seed", g.Params().Seed()).Info("new game with explicit mines")
	return nil
}

type newGameParams struct {
	Rows      int `schema:"rows"`
	Cols      int `schema:"cols"`
	MineCount int `schema:"mines"`
}

// decodeNewGame fills the keys present in src on top of defaults.
func decodeNewGame(src map[string][]string, defaults mines.GameParams) (mines.GameParams, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(false)
	dto := newGameParams{
		Rows:      defaults.Rows,
		Cols:      defaults.Cols,
		MineCount: defaults.MineCount,
	}
	if err := dec.Decode(&dto, src); err != nil {
		return mines.GameParams{}, err
	}
	return mines.GameParams{Rows: dto.Rows, Cols: dto.Cols, MineCount: dto.MineCount}, nil
}

func (s *session) printField() {
	fmt.Fprintln(s.out, s.game.RenderField())
	s.printStatus()
}

func (s *session) printStatus() {
	fmt.Fprintf(s.out, "%s (%.1fs)\n", s.game.Status(), s.game.GameTime())
}

func (s *session) printTime() {
	fmt.Fprintf(s.out, "%.3f\n", s.game.GameTime())
}

// logOutcome reports the end of the game the first time it is seen.
func (s *session) logOutcome(before mines.Status) {
	after := s.game.Status()
	if before == after || !after.Ended() {
		return
	}
	log.WithFields(logrus.Fields{
		"seed":   s.game.Params().Seed(),
		"status": after.String(),
		"time":   s.game.GameTime(),
	}).Info("game over")
}
