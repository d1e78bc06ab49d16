package domain

import "errors"

// Errors returned by session-level operations.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrGameOver    = errors.New("game over")
)

// Game holds the state of one human-vs-computer match. The human plays X and
// moves first.
type Game struct {
	Board Board
	Turn  Cell
	Moves int
}

// New returns a new game with the human to move.
func New() Game {
	return Game{Turn: Human}
}

// Outcome derives the current result from the board.
func (g Game) Outcome() Outcome {
	return g.Board.Evaluate()
}

// Over reports whether the game has ended.
func (g Game) Over() bool {
	return g.Outcome() != Ongoing
}

// Play attempts to place the side-to-move's mark at cell idx (0..8),
// flipping the turn on success.
func (g *Game) Play(idx int) error {
	if g.Over() {
		return ErrGameOver
	}
	if idx < 0 || idx > 8 {
		return ErrOutOfBounds
	}
	if !g.Board.Apply(idx, g.Turn) {
		return ErrOccupied
	}
	g.Moves++
	if g.Turn == Human {
		g.Turn = Computer
	} else {
		g.Turn = Human
	}
	return nil
}
