package board

import (
	"fmt"
	"strings"
)

// Path is the knight's visiting order; index i holds the cell placed at
// order i. A Path is owned by the attempt that built it and replaced
// wholesale on reset, never mutated in place across attempts.
type Path []Position

// ChessNotation renders the move sequence in algebraic style, joined with
// arrows, e.g. "a1 → c2 → e1 ...".
func (p Path) ChessNotation(dim int) string {
	notations := make([]string, len(p))
	for i, pos := range p {
		notations[i] = pos.ChessNotation(dim)
	}
	return strings.Join(notations, " → ")
}

// IsTour reports whether p is a complete, legal knight's tour of a dim×dim
// board: dim² cells, all in bounds, no repeats, consecutive cells a knight
// move apart.
func (p Path) IsTour(dim int) bool {
	if len(p) != dim*dim {
		return false
	}
	seen := make(map[Position]bool, len(p))
	for i, pos := range p {
		if pos.Row < 0 || pos.Row >= dim || pos.Col < 0 || pos.Col >= dim {
			return false
		}
		if seen[pos] {
			return false
		}
		seen[pos] = true
		if i == 0 {
			continue
		}
		if !isKnightMove(p[i-1], pos) {
			return false
		}
	}
	return true
}

func isKnightMove(from, to Position) bool {
	for _, mv := range KnightMoves {
		if mv.Apply(from) == to {
			return true
		}
	}
	return false
}

// ToDisplayText renders the board as a matrix of visit orders, with
// unvisited cells shown as dots.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	n := b.Dim()
	width := len(fmt.Sprintf("%d", n*n-1))
	sb.WriteString("\n")
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sq := b.At(Position{Row: i, Col: j})
			if sq == Unvisited {
				sb.WriteString(fmt.Sprintf("%*s ", width, "."))
			} else {
				sb.WriteString(fmt.Sprintf("%*d ", width, sq))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.ToDisplayText()
}
