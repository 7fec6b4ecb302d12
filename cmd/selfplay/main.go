package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/lk16/othello-arena/internal/config"
	"github.com/lk16/othello-arena/internal/othello"
	"github.com/lk16/othello-arena/internal/search"
)

// playGame plays a game where the first openingMoves moves are random, after which both
// sides use the search.
func playGame(rng *rand.Rand, openingMoves int) *othello.Game {
	game := othello.NewGame()

	for !game.IsOver() {
		board := game.Board()
		turn := game.Turn()

		var move othello.Move
		if len(game.Plies()) < openingMoves {
			moves := board.LegalMoves(turn)
			move = moves[rng.IntN(len(moves))]
		} else {
			var found bool
			move, found = search.BestMove(board, turn)
			if !found {
				// Passes are handled by the game, this cannot happen.
				panic("no move found")
			}
		}

		if err := game.PushMove(move); err != nil {
			panic(err)
		}
	}

	return game
}

func main() {
	config.SetLogLevel()

	games := flag.Int("games", 10, "number of games to play")
	openingMoves := flag.Int("random", 4, "number of random opening moves per game")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, *seed)) //nolint:gosec

	wins := map[othello.Cell]int{}

	for i := range *games {
		game := playGame(rng, *openingMoves)
		board := game.Board()
		winner := game.Winner()
		wins[winner]++

		slog.Info(
			"Game finished",
			"game", i+1,
			"winner", winner,
			"dark", board.CountChips(othello.DARK),
			"light", board.CountChips(othello.LIGHT),
			"moves", len(game.Plies()),
		)
	}

	fmt.Printf("dark wins: %d, light wins: %d, draws: %d\n", wins[othello.DARK], wins[othello.LIGHT], wins[othello.EMPTY])
}
