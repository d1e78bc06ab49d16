package domain

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	Human      // X
	Computer   // O
)

// Symbol returns the display character for a mark, or a space for Empty.
func (c Cell) Symbol() string {
	switch c {
	case Human:
		return "X"
	case Computer:
		return "O"
	default:
		return " "
	}
}

// Board is a fixed 3x3 board stored row-major, indexed 0..8.
type Board [9]Cell

// Outcome is the derived result of a board position.
type Outcome uint8

const (
	Ongoing Outcome = iota
	HumanWin
	ComputerWin
	Draw
)

var lines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// AvailableMoves returns the indexes of all empty cells in ascending order.
// The slice is empty iff the board is full.
func (b Board) AvailableMoves() []int {
	moves := make([]int, 0, 9)
	for i, c := range b {
		if c == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// Apply sets board[idx] to mark if idx is in range and the cell is empty.
// It reports whether the move was applied; an illegal move leaves the board
// untouched. This is the sole legality check for moves.
func (b *Board) Apply(idx int, mark Cell) bool {
	if idx < 0 || idx > 8 {
		return false
	}
	if b[idx] != Empty {
		return false
	}
	b[idx] = mark
	return true
}

// Evaluate derives the outcome of the position by scanning the eight winning
// lines. It is pure and recomputed on every call; callers mutate the board
// between calls.
func (b Board) Evaluate() Outcome {
	for _, ln := range lines {
		m := b[ln[0]]
		if m != Empty && b[ln[1]] == m && b[ln[2]] == m {
			if m == Human {
				return HumanWin
			}
			return ComputerWin
		}
	}
	for _, c := range b {
		if c == Empty {
			return Ongoing
		}
	}
	return Draw
}
