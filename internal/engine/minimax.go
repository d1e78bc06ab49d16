// Package engine chooses moves for the computer side by exhaustive minimax
// search. The full 3x3 game tree is small enough that no pruning or depth
// bound is needed; every reachable terminal position is scored.
package engine

import (
	"errors"
	"math"

	"github.com/julian-carbajal/tic-tac-toe/internal/domain"
)

// Errors reported for precondition violations.
var (
	ErrGameDecided = errors.New("game already decided")
	ErrNoMoves     = errors.New("no legal moves")
)

// BestMove returns the cell index the computer should play on b. The board
// must be ongoing with at least one empty cell; calling on a decided or full
// board is a caller bug and fails with an error. Lookahead mutates b in
// place but every hypothetical placement is undone before returning, so the
// caller's board is unchanged.
//
// Terminal positions score +1 for a computer win, -1 for a human win and 0
// for a draw, with no depth discount. Ties between equally scored moves go
// to the lowest index.
func BestMove(b *domain.Board) (int, error) {
	if b.Evaluate() != domain.Ongoing {
		return -1, ErrGameDecided
	}
	best := -1
	bestScore := math.MinInt
	for _, mv := range b.AvailableMoves() {
		b[mv] = domain.Computer
		score := minimax(b, false)
		b[mv] = domain.Empty
		if score > bestScore {
			bestScore = score
			best = mv
		}
	}
	if best < 0 {
		return -1, ErrNoMoves
	}
	return best, nil
}

// Value returns the minimax value of b with the given side to move, from the
// computer's perspective.
func Value(b *domain.Board, computerToMove bool) int {
	return minimax(b, computerToMove)
}

func minimax(b *domain.Board, maximizing bool) int {
	switch b.Evaluate() {
	case domain.ComputerWin:
		return 1
	case domain.HumanWin:
		return -1
	case domain.Draw:
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, mv := range b.AvailableMoves() {
			b[mv] = domain.Computer
			score := minimax(b, false)
			b[mv] = domain.Empty
			if score > best {
				best = score
			}
		}
		return best
	}

	best := math.MaxInt
	for _, mv := range b.AvailableMoves() {
		b[mv] = domain.Human
		score := minimax(b, true)
		b[mv] = domain.Empty
		if score < best {
			best = score
		}
	}
	return best
}
