package othello

import (
	"fmt"
	"strings"
)

const (
	// Size is the width and height of the board.
	Size = 8
)

// Cell is the content of a single square. DARK and LIGHT double as player colors.
type Cell int8

const (
	EMPTY Cell = iota
	DARK
	LIGHT
)

// Opponent returns the other color. EMPTY has no opponent and returns EMPTY.
func (c Cell) Opponent() Cell {
	switch c {
	case DARK:
		return LIGHT
	case LIGHT:
		return DARK
	default:
		return EMPTY
	}
}

// IsPlayer checks if the cell value is a player color.
func (c Cell) IsPlayer() bool {
	return c == DARK || c == LIGHT
}

// String returns the name of the cell value.
func (c Cell) String() string {
	switch c {
	case DARK:
		return "dark"
	case LIGHT:
		return "light"
	default:
		return "empty"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cell) UnmarshalText(text []byte) error {
	cell, err := ParseCell(string(text))
	if err != nil {
		return err
	}
	*c = cell
	return nil
}

// ParseCell parses "dark", "light" or "empty", case insensitive.
func ParseCell(s string) (Cell, error) {
	switch strings.ToLower(s) {
	case "dark":
		return DARK, nil
	case "light":
		return LIGHT, nil
	case "empty":
		return EMPTY, nil
	default:
		return EMPTY, fmt.Errorf("invalid cell: %q", s)
	}
}

// directions lists the 8 compass directions as (row, col) steps.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an 8x8 Othello board. It has no notion of whose turn it is.
// Board is a value type: assigning it copies all squares.
type Board struct {
	cells [Size][Size]Cell
}

// NewBoardEmpty creates a board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardStart creates a board with the standard starting position.
func NewBoardStart() Board {
	var b Board
	mid := Size / 2
	b.cells[mid-1][mid-1] = DARK
	b.cells[mid][mid] = DARK
	b.cells[mid-1][mid] = LIGHT
	b.cells[mid][mid-1] = LIGHT
	return b
}

// NewBoardFromString parses a board from the format produced by String.
func NewBoardFromString(s string) (Board, error) {
	var b Board

	if len(s) != Size*Size {
		return b, fmt.Errorf("board string must be %d characters long, got %d", Size*Size, len(s))
	}

	for i, r := range s {
		var cell Cell
		switch r {
		case '-':
			cell = EMPTY
		case 'x':
			cell = DARK
		case 'o':
			cell = LIGHT
		default:
			return Board{}, fmt.Errorf("invalid character %q at index %d", r, i)
		}
		b.cells[i/Size][i%Size] = cell
	}

	return b, nil
}

// InBounds checks if (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Get returns the cell at (row, col). Squares off the board are EMPTY.
func (b Board) Get(row, col int) Cell {
	if !InBounds(row, col) {
		return EMPTY
	}
	return b.cells[row][col]
}

// Set puts a value on a square. Squares off the board are ignored.
func (b *Board) Set(row, col int, cell Cell) {
	if !InBounds(row, col) {
		return
	}
	b.cells[row][col] = cell
}

// flips returns the squares that change color when player moves on (row, col).
// It does not check whether the target square is empty.
func (b Board) flips(row, col int, player Cell) []Move {
	var flipped []Move
	opponent := player.Opponent()

	for _, dir := range directions {
		r, c := row+dir[0], col+dir[1]
		run := 0

		for InBounds(r, c) && b.cells[r][c] == opponent {
			r += dir[0]
			c += dir[1]
			run++
		}

		if run == 0 || !InBounds(r, c) || b.cells[r][c] != player {
			continue
		}

		for dist := 1; dist <= run; dist++ {
			flipped = append(flipped, Move{Row: row + dist*dir[0], Col: col + dist*dir[1]})
		}
	}

	return flipped
}

// captures checks if moving on (row, col) flips at least one disc in any direction.
func (b Board) captures(row, col int, player Cell) bool {
	opponent := player.Opponent()

	for _, dir := range directions {
		r, c := row+dir[0], col+dir[1]
		run := 0

		for InBounds(r, c) && b.cells[r][c] == opponent {
			r += dir[0]
			c += dir[1]
			run++
		}

		if run > 0 && InBounds(r, c) && b.cells[r][c] == player {
			return true
		}
	}

	return false
}

// IsLegalMove checks if player may place a disc on (row, col).
// This is defined for all integers: squares off the board are never legal.
func (b Board) IsLegalMove(row, col int, player Cell) bool {
	if !player.IsPlayer() || !InBounds(row, col) || b.cells[row][col] != EMPTY {
		return false
	}
	return b.captures(row, col, player)
}

// LegalMoves returns all legal moves for player in row-major order.
func (b Board) LegalMoves(player Cell) []Move {
	moves := make([]Move, 0)
	for row := range Size {
		for col := range Size {
			if b.IsLegalMove(row, col, player) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// HasMoves checks if player has at least one legal move.
func (b Board) HasMoves(player Cell) bool {
	for row := range Size {
		for col := range Size {
			if b.IsLegalMove(row, col, player) {
				return true
			}
		}
	}
	return false
}

// ApplyMove places a disc for player and flips all captured discs.
// The move must be legal, this is not checked again.
func (b *Board) ApplyMove(move Move, player Cell) {
	flipped := b.flips(move.Row, move.Col, player)

	b.cells[move.Row][move.Col] = player
	for _, f := range flipped {
		b.cells[f.Row][f.Col] = player
	}
}

// DoMove returns a copy of the board with the move applied. The receiver is not modified.
func (b Board) DoMove(move Move, player Cell) Board {
	b.ApplyMove(move, player)
	return b
}

// CountChips returns the number of squares containing cell.
func (b Board) CountChips(cell Cell) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if b.cells[row][col] == cell {
				count++
			}
		}
	}
	return count
}

// CountEmpty returns the number of empty squares.
func (b Board) CountEmpty() int {
	return b.CountChips(EMPTY)
}

// IsFull checks if no empty squares are left.
func (b Board) IsFull() bool {
	return b.CountEmpty() == 0
}

// IsGameOver checks if neither player can move, or if the board is full.
func (b Board) IsGameOver() bool {
	return (!b.HasMoves(DARK) && !b.HasMoves(LIGHT)) || b.IsFull()
}

// Winner returns the color with the most discs, or EMPTY on a draw.
func (b Board) Winner() Cell {
	dark := b.CountChips(DARK)
	light := b.CountChips(LIGHT)

	switch {
	case dark > light:
		return DARK
	case light > dark:
		return LIGHT
	default:
		return EMPTY
	}
}

// ASCIIArtLines returns the ascii art lines for the board.
// Legal moves of player are marked with a dot. Pass EMPTY to hide them.
func (b Board) ASCIIArtLines(player Cell) []string {
	lines := make([]string, Size+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := range Size {
		line := fmt.Sprintf("%d ", row+1)

		for col := range Size {
			switch {
			case b.cells[row][col] == LIGHT:
				line += "○ "
			case b.cells[row][col] == DARK:
				line += "● "
			case b.IsLegalMove(row, col, player):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print(player Cell) {
	for _, line := range b.ASCIIArtLines(player) {
		fmt.Println(line)
	}
}

// String returns 64 characters in row-major order: '-' empty, 'x' dark, 'o' light.
func (b Board) String() string {
	var builder strings.Builder
	builder.Grow(Size * Size)

	for row := range Size {
		for col := range Size {
			switch b.cells[row][col] {
			case DARK:
				builder.WriteByte('x')
			case LIGHT:
				builder.WriteByte('o')
			default:
				builder.WriteByte('-')
			}
		}
	}

	return builder.String()
}

// Rows returns the board as a grid of cell names, used in API responses.
func (b Board) Rows() [][]Cell {
	rows := make([][]Cell, Size)
	for row := range Size {
		rows[row] = make([]Cell, Size)
		copy(rows[row], b.cells[row][:])
	}
	return rows
}
