package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/othello-arena/internal/othello"
	"github.com/lk16/othello-arena/internal/search"
)

func main() {
	boardString := flag.String("board", "", "the board to show")
	turn := flag.String("turn", "dark", "the player to move")
	best := flag.Bool("best", false, "also show the move the computer would play")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	player, err := othello.ParseCell(*turn)
	if err != nil || !player.IsPlayer() {
		fmt.Printf("invalid player: %s\n", *turn)
		os.Exit(1)
	}

	board.Print(player)

	if *best {
		result := search.Search(board, player)
		fmt.Printf("best move: %s (score %d, %d nodes)\n", result.Move, result.Score, result.Nodes)
	}
}
