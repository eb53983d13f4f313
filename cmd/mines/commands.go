package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/mines"
)

var errQuit = errors.New("quit")

const variadic = -1

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"n": variadic,
	"o": 2,
	"f": 2,
	"c": 2,
	"x": 0,
	"p": 0,
	"s": 0,
	"t": 0,
	"q": 0,
	"h": 0,
}

const usage = `commands:
  n [rows=R cols=C mines=M | R:C:M]  new game with random mines
  n ROWS COLS [ROW,COL ...]          new game with mines at the given cells
  o ROW COL                          open a cell
  f ROW COL                          flag or unflag a cell
  c ROW COL                          open around a satisfied number
  x                                  give up
  p                                  print the field
  s                                  print the status
  t                                  print the game time
  h                                  print this help
  q                                  quit`

func parseRowCol(twoStrings []string) (p mines.Point, err error) {
	if p.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if p.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

// explicitLayout reports whether the arguments of "n" start with bare
// ROWS COLS rather than a seed or key=value pairs.
func explicitLayout(args []string) bool {
	if len(args) < 2 {
		return false
	}
	for _, arg := range args[:2] {
		if strings.ContainsAny(arg, "=:,") {
			return false
		}
	}
	return true
}

// parseLayout reads "ROWS COLS ROW,COL ...".
func parseLayout(args []string) (rows, cols int, mine []mines.Point, err error) {
	if rows, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, nil, errors.New("rows must be an int")
	}
	if cols, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, nil, errors.New("cols must be an int")
	}
	for _, arg := range args[2:] {
		pair := strings.Split(arg, ",")
		if len(pair) != 2 {
			return 0, 0, nil, fmt.Errorf("expected ROW,COL, got %q", arg)
		}
		p, err := parseRowCol(pair)
		if err != nil {
			return 0, 0, nil, fmt.Errorf("mine %q: %w", arg, err)
		}
		mine = append(mine, p)
	}
	return rows, cols, mine, nil
}

// parseNewGame reads either a single "rows:cols:mines" seed or a list of
// key=value pairs applied over the session defaults.
func parseNewGame(args []string, defaults mines.GameParams) (mines.GameParams, error) {
	if len(args) == 1 && !strings.Contains(args[0], "=") {
		p, err := mines.ParseSeed(args[0])
		if err != nil {
			return mines.GameParams{}, err
		}
		return *p, nil
	}
	src := make(map[string][]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return mines.GameParams{}, fmt.Errorf("expected key=value, got %q", arg)
		}
		src[key] = append(src[key], value)
	}
	return decodeNewGame(src, defaults)
}

func executeCommand(s *session, line string) (err error) {
	parts := fields(line)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != variadic && nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}

	before := s.game.Status()
	defer func() {
		if err == nil {
			s.logOutcome(before)
		}
	}()

	switch parts[0] {
	case "n":
		if explicitLayout(parts[1:]) {
			rows, cols, mine, err := parseLayout(parts[1:])
			if err != nil {
				return err
			}
			if err := s.newGameWithMines(rows, cols, mine); err != nil {
				return err
			}
			s.printField()
			return nil
		}
		params, err := parseNewGame(parts[1:], s.defaults)
		if err != nil {
			return err
		}
		if err := s.newGame(params); err != nil {
			return err
		}
		s.printField()
		return nil
	case "o", "f", "c":
		p, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		switch parts[0] {
		case "o":
			err = s.game.OpenCell(p)
		case "f":
			err = s.game.MarkCell(p)
		case "c":
			err = s.game.ChordCell(p)
		}
		if err != nil {
			return err
		}
		s.printField()
		return nil
	case "x":
		s.game.Forfeit()
		s.printField()
		return nil
	case "p":
		s.printField()
		return nil
	case "s":
		s.printStatus()
		return nil
	case "t":
		s.printTime()
		return nil
	case "h":
		fmt.Fprintln(s.out, usage)
		return nil
	case "q":
		return errQuit
	}
	return errors.New("invalid command")
}
