package domain

import (
	"testing"
)

// helper to apply a sequence of moves
func playMoves(t *testing.T, g *Game, moves []int) {
	t.Helper()
	for i, m := range moves {
		if err := g.Play(m); err != nil {
			t.Fatalf("move %d (%d) failed: %v", i, m, err)
		}
	}
}

var winningLines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// pickFillers returns n cells not on the given line, in a fixed non-colliding
// order so the fillers never complete a line of their own.
func pickFillers(line [3]int, n int) []int {
	candidates := []int{5, 7, 3, 6, 2, 1, 8, 4}
	out := make([]int, 0, n)
	for _, f := range candidates {
		if f == line[0] || f == line[1] || f == line[2] {
			continue
		}
		out = append(out, f)
		if len(out) == n {
			break
		}
	}
	return out
}

func TestNewGameInitialState(t *testing.T) {
	g := New()
	if g.Turn != Human {
		t.Fatalf("expected human to start, got %v", g.Turn)
	}
	if g.Moves != 0 {
		t.Fatalf("expected 0 moves, got %d", g.Moves)
	}
	if g.Over() {
		t.Fatalf("expected game not over")
	}
	if g.Outcome() != Ongoing {
		t.Fatalf("expected Ongoing, got %v", g.Outcome())
	}
	for i, c := range g.Board {
		if c != Empty {
			t.Fatalf("expected empty board, cell %d = %v", i, c)
		}
	}
}

func TestPlayOutOfBounds(t *testing.T) {
	g := New()
	for _, idx := range []int{-1, 9, 100} {
		if err := g.Play(idx); err != ErrOutOfBounds {
			t.Fatalf("expected ErrOutOfBounds for %d, got %v", idx, err)
		}
	}
}

func TestPlayOccupied(t *testing.T) {
	g := New()
	if err := g.Play(0); err != nil {
		t.Fatalf("first move failed: %v", err)
	}
	if err := g.Play(0); err != ErrOccupied {
		t.Fatalf("expected ErrOccupied on same cell, got %v", err)
	}
}

func TestTurnFlipsAfterValidMove(t *testing.T) {
	g := New()
	if err := g.Play(4); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if g.Turn != Computer {
		t.Fatalf("expected turn to flip to computer, got %v", g.Turn)
	}
	if err := g.Play(0); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if g.Turn != Human {
		t.Fatalf("expected turn to flip back to human, got %v", g.Turn)
	}
}

func TestWinConditionsForHuman(t *testing.T) {
	for _, line := range winningLines {
		g := New()
		fillers := pickFillers(line, 2)
		// human, filler, human, filler, human completes the line
		seq := []int{line[0], fillers[0], line[1], fillers[1], line[2]}
		playMoves(t, &g, seq)
		if g.Outcome() != HumanWin {
			t.Fatalf("expected human win on line %v, got %v", line, g.Outcome())
		}
		if g.Moves != 5 {
			t.Fatalf("expected 5 moves to win, got %d", g.Moves)
		}
	}
}

func TestWinConditionsForComputer(t *testing.T) {
	for _, line := range winningLines {
		g := New()
		fillers := pickFillers(line, 3)
		// human fillers interleave; computer completes the line on move 6
		seq := []int{fillers[0], line[0], fillers[1], line[1], fillers[2], line[2]}
		playMoves(t, &g, seq)
		if g.Outcome() != ComputerWin {
			t.Fatalf("expected computer win on line %v, got %v", line, g.Outcome())
		}
		if g.Moves != 6 {
			t.Fatalf("expected 6 moves to win, got %d", g.Moves)
		}
	}
}

func TestDrawNoWinner(t *testing.T) {
	g := New()
	// no three in a row
	seq := []int{0, 1, 2, 4, 3, 5, 7, 6, 8}
	playMoves(t, &g, seq)
	if g.Outcome() != Draw {
		t.Fatalf("expected Draw, got %v", g.Outcome())
	}
	if g.Moves != 9 {
		t.Fatalf("expected 9 moves on draw, got %d", g.Moves)
	}
}

func TestGameOverBlocksFurtherMoves(t *testing.T) {
	g := New()
	// human wins quickly on the top row
	playMoves(t, &g, []int{0, 3, 1, 4, 2})
	if g.Outcome() != HumanWin {
		t.Fatalf("expected human win, got %v", g.Outcome())
	}
	if err := g.Play(8); err != ErrGameOver {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}
