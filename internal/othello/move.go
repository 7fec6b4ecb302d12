package othello

import (
	"fmt"
	"strings"
)

// Move is a square on the board, 0-indexed.
type Move struct {
	Row int
	Col int
}

// PassMove is used when a player cannot move, and as the move of a search tree root.
var PassMove = Move{Row: -1, Col: -1}

// NewMoveFromField converts a field notation (e.g. "a1", "h8") to a Move.
// PassMove is returned if the field is "--", "ps" or "pa".
func NewMoveFromField(field string) (Move, error) {
	if len(field) != 2 {
		return Move{}, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if field == "--" || field == "ps" || field == "pa" {
		return PassMove, nil
	}

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Move{}, fmt.Errorf("invalid field: %q", field)
	}

	return Move{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}

// NewMoveFromIndex converts an index (0-63, row-major) to a Move.
func NewMoveFromIndex(index int) Move {
	return Move{Row: index / Size, Col: index % Size}
}

// IsPass checks if this is the pass move.
func (m Move) IsPass() bool {
	return m == PassMove
}

// InBounds checks if the move is on the board.
func (m Move) InBounds() bool {
	return InBounds(m.Row, m.Col)
}

// Index returns the row-major index (0-63) of the move.
func (m Move) Index() int {
	return m.Row*Size + m.Col
}

// String returns the field notation of the move, "--" for a pass.
func (m Move) String() string {
	if m.IsPass() {
		return "--"
	}

	if !m.InBounds() {
		return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
	}

	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

// MarshalText implements encoding.TextMarshaler.
func (m Move) MarshalText() ([]byte, error) {
	if !m.IsPass() && !m.InBounds() {
		return nil, fmt.Errorf("move out of bounds: %s", m.String())
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Move) UnmarshalText(text []byte) error {
	move, err := NewMoveFromField(string(text))
	if err != nil {
		return err
	}
	*m = move
	return nil
}
