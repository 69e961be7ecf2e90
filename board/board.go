// Package board contains the knight's tour board representation: visit
// orders for every cell, the fixed knight move table, and the legality
// and degree queries the solvers are built on.
package board

import (
	"fmt"
)

// Unvisited marks a cell the knight has not landed on yet.
const Unvisited = int16(-1)

// Position is a 0-based (row, col) cell coordinate.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// ChessNotation renders the position in algebraic style for a board of
// dimension dim: columns map to files a.., rows count down from dim.
func (p Position) ChessNotation(dim int) string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col), dim-p.Row)
}

// MoveVector is a single knight offset.
type MoveVector struct {
	DRow int
	DCol int
}

// KnightMoves is the canonical set of 8 knight offsets. The index order is
// significant: the backtracking solver iterates it verbatim, so changing it
// changes which tour exhaustive search finds first.
var KnightMoves = [8]MoveVector{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// Apply returns the position reached by following the move vector.
func (m MoveVector) Apply(p Position) Position {
	return Position{Row: p.Row + m.DRow, Col: p.Col + m.DCol}
}

// Board is an N×N grid of visit orders. Each cell holds the 0-based order
// the knight landed on it, or Unvisited. A Board is owned by exactly one
// search attempt at a time; it is not safe for concurrent use.
type Board struct {
	dim     int
	squares []int16
}

// New creates an empty dim×dim board.
func New(dim int) *Board {
	b := &Board{
		dim:     dim,
		squares: make([]int16, dim*dim),
	}
	b.Reset()
	return b
}

func (b *Board) Dim() int {
	return b.dim
}

func (b *Board) idx(p Position) int {
	return p.Row*b.dim + p.Col
}

// At returns the visit order recorded at p, or Unvisited.
func (b *Board) At(p Position) int16 {
	return b.squares[b.idx(p)]
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.dim && p.Col >= 0 && p.Col < b.dim
}

// IsLegal reports whether p is on the board and not yet visited.
func (b *Board) IsLegal(p Position) bool {
	return b.InBounds(p) && b.squares[b.idx(p)] == Unvisited
}

// Degree counts the legal knight moves out of p given the current board
// contents. This is Warnsdorff's core signal. O(8).
func (b *Board) Degree(p Position) int {
	count := 0
	for _, mv := range KnightMoves {
		if b.IsLegal(mv.Apply(p)) {
			count++
		}
	}
	return count
}

// Place records visit order at p. The caller must have checked IsLegal;
// no validation happens here, to keep the hot loop cheap.
func (b *Board) Place(p Position, order int) {
	b.squares[b.idx(p)] = int16(order)
}

// Unplace resets p to Unvisited. Only the backtracking solver's undo step
// should need this.
func (b *Board) Unplace(p Position) {
	b.squares[b.idx(p)] = Unvisited
}

// Reset clears every cell to Unvisited.
func (b *Board) Reset() {
	for i := range b.squares {
		b.squares[i] = Unvisited
	}
}

// IsEmpty reports whether no cell has been visited.
func (b *Board) IsEmpty() bool {
	for _, sq := range b.squares {
		if sq != Unvisited {
			return false
		}
	}
	return true
}
