package main

import (
	"flag"
	"log"

	"github.com/lk16/othello-arena/internal/config"
	"github.com/lk16/othello-arena/internal/gui"
	"github.com/lk16/othello-arena/internal/othello"
)

func main() {
	config.SetLogLevel()

	defaultStart := othello.NewBoardStart().String()
	start := flag.String("start", defaultStart, "the start position")
	color := flag.String("color", "dark", "the color played by the human")
	flag.Parse()

	startBoard, err := othello.NewBoardFromString(*start)
	if err != nil {
		log.Fatalf("failed to create board: %v", err)
	}

	humanColor, err := othello.ParseCell(*color)
	if err != nil {
		log.Fatalf("failed to parse color: %v", err)
	}

	window, err := gui.NewWindow(startBoard, humanColor)
	if err != nil {
		log.Fatalf("failed to create window: %v", err)
	}

	window.Run()
}
