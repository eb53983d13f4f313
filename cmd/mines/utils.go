package main

import (
	"iter"
	"strings"
)

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// fields splits a command line on spaces, dropping empty pieces.
func fields(line string) []string {
	var res []string
	for _, piece := range byPiece(strings.TrimSpace(line), " ") {
		if piece != "" {
			res = append(res, piece)
		}
	}
	return res
}
