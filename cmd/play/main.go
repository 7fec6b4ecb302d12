package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/lk16/othello-arena/internal/client"
	"github.com/lk16/othello-arena/internal/config"
	"github.com/lk16/othello-arena/internal/models"
	"github.com/lk16/othello-arena/internal/othello"
)

const requestTimeout = 10 * time.Second

func printState(state models.GameState) {
	board, err := othello.NewBoardFromString(state.Board)
	if err != nil {
		log.Fatalf("invalid board from server: %v", err)
	}

	board.Print(state.Turn)
	fmt.Printf("dark %d - light %d\n", state.DarkDiscs, state.LightDiscs)
}

func printResult(state models.GameState) {
	switch state.Winner {
	case state.HumanColor:
		fmt.Println("You win!")
	case othello.EMPTY:
		fmt.Println("Draw.")
	default:
		fmt.Println("You lose.")
	}
}

func main() {
	config.SetLogLevel()

	color := flag.String("color", "dark", "the color played by the human")
	remote := flag.Bool("remote", false, "play against the server at ARENA_SERVER_URL")
	flag.Parse()

	humanColor, err := othello.ParseCell(*color)
	if err != nil {
		log.Fatalf("failed to parse color: %v", err)
	}

	var b backend = &localBackend{}
	if *remote {
		b = client.NewClient(config.LoadClientConfig())
	}

	if err = play(b, humanColor, bufio.NewScanner(os.Stdin)); err != nil {
		log.Fatal(err)
	}
}

func play(b backend, humanColor othello.Cell, input *bufio.Scanner) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	state, err := b.NewGame(ctx, humanColor)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	for !state.GameOver {
		printState(state)

		if state.Turn == state.ComputerColor {
			time.Sleep(config.ComputerMoveDelay)

			ctx, cancel = context.WithTimeout(context.Background(), requestTimeout)
			resp, err := b.ComputerMove(ctx, state.ID)
			cancel()
			if err != nil {
				return fmt.Errorf("computer move failed: %w", err)
			}

			if resp.Passed {
				fmt.Println("Computer passes.")
			} else {
				fmt.Printf("Computer plays %s (score %d, %d nodes)\n", resp.Move, resp.Score, resp.Nodes)
			}

			state = resp.Game
			continue
		}

		fmt.Printf("Your move (%s), \"undo\" or \"quit\": ", state.HumanColor)
		if !input.Scan() {
			return input.Err()
		}

		line := strings.TrimSpace(input.Text())

		var next models.GameState

		ctx, cancel = context.WithTimeout(context.Background(), requestTimeout)

		switch line {
		case "quit":
			cancel()
			return nil
		case "undo":
			next, err = b.Undo(ctx, state.ID)
		default:
			var move othello.Move
			move, err = othello.NewMoveFromField(line)
			if err == nil {
				next, err = b.PlayMove(ctx, state.ID, move)
			}
		}

		cancel()

		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		state = next
	}

	printState(state)
	printResult(state)
	return nil
}
