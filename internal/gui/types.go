package gui

import "github.com/lk16/othello-arena/internal/othello"

// DrawArgs contains arguments for drawing the window content.
type DrawArgs struct {
	// Board is the current board state
	Board othello.Board

	// Turn is the player to move
	Turn othello.Cell

	// HumanColor is the color played by the human
	HumanColor othello.Cell

	// ShowLegalMoves decides if we show the legal moves of the human
	ShowLegalMoves bool

	// Highlight is the move the computer is about to play, or othello.PassMove
	Highlight othello.Move

	// GameOver is set when neither player can move
	GameOver bool
}
