package mines

import "fmt"

type Status int8

const (
	NotStarted Status = iota
	InProgress
	Won
	Lost
)

// Status implements [fmt.Stringer]. It panics with [AssertionError] on a
// value outside the enum.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "Not started"
	case InProgress:
		return "In progress"
	case Won:
		return "Won"
	case Lost:
		return "Lose"
	default:
		panic(AssertionError{fmt.Sprintf("invalid status %d", int8(s))})
	}
}

func (s Status) Ended() bool {
	return s == Won || s == Lost
}

type event string

const (
	move     event = "move" // open, flag or chord
	detonate event = "detonate"
	cleared  event = "cleared" // last safe cell opened
	forfeit  event = "forfeit"
)

// Won and Lost are terminal and accept no events.
var transitions = map[Status]map[event]Status{
	NotStarted: {
		move:    InProgress,
		forfeit: Lost,
	},
	InProgress: {
		move:     InProgress,
		detonate: Lost,
		cleared:  Won,
		forfeit:  Lost,
	},
}

// next returns the status reached from s on e; ok is false when s does
// not accept e.
func (s Status) next(e event) (to Status, ok bool) {
	if s < NotStarted || s > Lost {
		panic(AssertionError{fmt.Sprintf("invalid status %d", int8(s))})
	}
	to, ok = transitions[s][e]
	if !ok {
		return s, false
	}
	return to, true
}
