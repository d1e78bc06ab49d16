package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/julian-carbajal/tic-tac-toe/internal/domain"
	"github.com/julian-carbajal/tic-tac-toe/internal/engine"
)

func printBoard(b domain.Board) {
	for r := 0; r < 3; r++ {
		fmt.Printf("%s | %s | %s\n", b[r*3].Symbol(), b[r*3+1].Symbol(), b[r*3+2].Symbol())
		if r < 2 {
			fmt.Println("---------")
		}
	}
}

func readMove(reader *bufio.Reader, g *domain.Game) {
	for {
		fmt.Print("Enter your move (0-8): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			os.Exit(0)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			fmt.Println("Please enter a number between 0 and 8.")
			continue
		}
		if err := g.Play(idx); err != nil {
			fmt.Println("Invalid move, try again.")
			continue
		}
		return
	}
}

func main() {
	fmt.Println("Welcome to Tic Tac Toe!")
	fmt.Println("You are X and the computer is O")
	fmt.Println("Positions are numbered 0-8, left to right, top to bottom")

	reader := bufio.NewReader(os.Stdin)
	g := domain.New()

	for {
		printBoard(g.Board)

		readMove(reader, &g)
		if g.Over() {
			break
		}

		fmt.Println("\nComputer is thinking...")
		reply, err := engine.BestMove(&g.Board)
		if err != nil {
			log.Fatalf("engine: %v", err)
		}
		if err := g.Play(reply); err != nil {
			log.Fatalf("engine move rejected: %v", err)
		}
		if g.Over() {
			break
		}
	}

	printBoard(g.Board)
	switch g.Outcome() {
	case domain.HumanWin:
		fmt.Println("You win! Congratulations!")
	case domain.ComputerWin:
		fmt.Println("Computer wins!")
	default:
		fmt.Println("It's a tie!")
	}
}
