package othello

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// boardFromRows builds a board from 8 strings of 8 characters in the String format.
func boardFromRows(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, Size)

	board, err := NewBoardFromString(strings.Join(rows, ""))
	require.NoError(t, err)
	return board
}

func TestCell_Opponent(t *testing.T) {
	require.Equal(t, LIGHT, DARK.Opponent())
	require.Equal(t, DARK, LIGHT.Opponent())
	require.Equal(t, EMPTY, EMPTY.Opponent())
}

func TestCell_Text(t *testing.T) {
	for _, cell := range []Cell{EMPTY, DARK, LIGHT} {
		text, err := cell.MarshalText()
		require.NoError(t, err)

		var parsed Cell
		require.NoError(t, parsed.UnmarshalText(text))
		require.Equal(t, cell, parsed)
	}

	var cell Cell
	require.Error(t, cell.UnmarshalText([]byte("purple")))

	parsed, err := ParseCell("DARK")
	require.NoError(t, err)
	require.Equal(t, DARK, parsed)
}

func TestNewBoardStart(t *testing.T) {
	board := NewBoardStart()

	require.Equal(t, DARK, board.Get(3, 3))
	require.Equal(t, DARK, board.Get(4, 4))
	require.Equal(t, LIGHT, board.Get(3, 4))
	require.Equal(t, LIGHT, board.Get(4, 3))

	require.Equal(t, 2, board.CountChips(DARK))
	require.Equal(t, 2, board.CountChips(LIGHT))
	require.Equal(t, 60, board.CountEmpty())
}

func TestNewBoardStart_LegalMoves(t *testing.T) {
	board := NewBoardStart()

	dark := board.LegalMoves(DARK)
	require.Equal(t, []Move{{2, 4}, {3, 5}, {4, 2}, {5, 3}}, dark)

	light := board.LegalMoves(LIGHT)
	require.Equal(t, []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, light)
}

func TestNewBoardFromString(t *testing.T) {
	start := NewBoardStart()

	parsed, err := NewBoardFromString(start.String())
	require.NoError(t, err)
	require.Equal(t, start, parsed)

	_, err = NewBoardFromString("x")
	require.Error(t, err)

	_, err = NewBoardFromString(strings.Repeat("-", 63) + "?")
	require.Error(t, err)
}

func TestBoard_IsLegalMove_OutOfBounds(t *testing.T) {
	board := NewBoardStart()

	coords := [][2]int{
		{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-100, 100}, {1 << 30, 3},
	}

	for _, coord := range coords {
		require.False(t, board.IsLegalMove(coord[0], coord[1], DARK))
		require.False(t, board.IsLegalMove(coord[0], coord[1], LIGHT))
	}
}

func TestBoard_IsLegalMove(t *testing.T) {
	board := NewBoardStart()

	tests := []struct {
		name   string
		row    int
		col    int
		player Cell
		want   bool
	}{
		{"dark d3", 2, 4, DARK, true},
		{"dark corner", 0, 0, DARK, false},
		{"occupied", 3, 3, DARK, false},
		{"occupied by opponent", 3, 4, DARK, false},
		{"light d3", 2, 3, LIGHT, true},
		{"light cannot use dark move", 2, 4, LIGHT, false},
		{"empty player", 2, 4, EMPTY, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, board.IsLegalMove(tt.row, tt.col, tt.player))
		})
	}
}

func TestBoard_IsLegalMove_RunEndsAtEdge(t *testing.T) {
	board := NewBoardEmpty()
	board.Set(0, 1, LIGHT)
	board.Set(0, 2, LIGHT)

	// The light run ends at an empty square.
	require.False(t, board.IsLegalMove(0, 3, DARK))

	// The light run is bounded by a dark disc.
	board.Set(0, 0, DARK)
	require.True(t, board.IsLegalMove(0, 3, DARK))
}

func TestBoard_ApplyMove_FlipsOnlyBoundedRun(t *testing.T) {
	board := NewBoardEmpty()
	board.Set(3, 3, DARK)
	board.Set(3, 4, LIGHT)

	require.True(t, board.IsLegalMove(3, 5, DARK))
	board.ApplyMove(Move{Row: 3, Col: 5}, DARK)

	require.Equal(t, DARK, board.Get(3, 5))
	require.Equal(t, DARK, board.Get(3, 4))
	require.Equal(t, DARK, board.Get(3, 3))
	require.Equal(t, 3, board.CountChips(DARK))
	require.Equal(t, 0, board.CountChips(LIGHT))
}

func TestBoard_ApplyMove_MultipleDirections(t *testing.T) {
	board := boardFromRows(t,
		"x---x---",
		"-o--o---",
		"--o-o---",
		"---oo---",
		"-ooo-ooo",
		"--------",
		"--------",
		"--------",
	)

	// e5 captures north (3 discs) and north-west (3 discs), but not west (not bounded)
	// and not east (runs into the edge).
	board.ApplyMove(Move{Row: 4, Col: 4}, DARK)

	want := boardFromRows(t,
		"x---x---",
		"-x--x---",
		"--x-x---",
		"---xx---",
		"-oooxooo",
		"--------",
		"--------",
		"--------",
	)
	require.Equal(t, want, board)
}

func TestBoard_ApplyMove_StopsAtFirstOwnDisc(t *testing.T) {
	board := boardFromRows(t,
		"-oxo-x--",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
	)

	board.ApplyMove(Move{Row: 0, Col: 0}, DARK)

	// Only b1 is flipped, d1 is beyond the bounding dark disc on c1.
	require.Equal(t, "xxxo-x--", board.String()[:8])
}

func TestBoard_ApplyMove_PlayedSquareNoLongerLegal(t *testing.T) {
	board := NewBoardStart()
	player := DARK

	// Play a full game choosing the first legal move.
	for !board.IsGameOver() {
		moves := board.LegalMoves(player)
		if len(moves) == 0 {
			player = player.Opponent()
			continue
		}

		move := moves[0]
		board.ApplyMove(move, player)

		for _, p := range []Cell{DARK, LIGHT} {
			require.NotContains(t, board.LegalMoves(p), move)
			require.False(t, board.IsLegalMove(move.Row, move.Col, p))
		}

		player = player.Opponent()
	}
}

func TestBoard_DoMove_DoesNotModifyReceiver(t *testing.T) {
	board := NewBoardStart()
	child := board.DoMove(Move{Row: 2, Col: 4}, DARK)

	require.Equal(t, NewBoardStart(), board)
	require.Equal(t, 4, child.CountChips(DARK))
	require.Equal(t, 1, child.CountChips(LIGHT))
}

func TestBoard_IsGameOver(t *testing.T) {
	require.False(t, NewBoardStart().IsGameOver())

	// No discs at all: neither player can move.
	require.True(t, NewBoardEmpty().IsGameOver())

	// Only dark discs left, but empty squares remain.
	board := NewBoardEmpty()
	board.Set(0, 0, DARK)
	board.Set(3, 3, DARK)
	require.True(t, board.IsGameOver())

	// Light cannot move but dark can: not over.
	board = boardFromRows(t,
		"xo------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
	)
	require.True(t, board.HasMoves(DARK))
	require.False(t, board.HasMoves(LIGHT))
	require.False(t, board.IsGameOver())
}

func TestBoard_IsGameOver_FullBoard(t *testing.T) {
	board, err := NewBoardFromString(strings.Repeat("xo", 32))
	require.NoError(t, err)

	require.True(t, board.IsFull())
	require.False(t, board.HasMoves(DARK))
	require.False(t, board.HasMoves(LIGHT))
	require.True(t, board.IsGameOver())

	board, err = NewBoardFromString(strings.Repeat("x", 64))
	require.NoError(t, err)
	require.True(t, board.IsGameOver())
}

func TestBoard_CountChips(t *testing.T) {
	board, err := NewBoardFromString(strings.Repeat("x", 20) + strings.Repeat("o", 15) + strings.Repeat("-", 29))
	require.NoError(t, err)

	require.Equal(t, 20, board.CountChips(DARK))
	require.Equal(t, 15, board.CountChips(LIGHT))
	require.Equal(t, 29, board.CountEmpty())
	require.Equal(t, DARK, board.Winner())
}

func TestBoard_Winner(t *testing.T) {
	require.Equal(t, EMPTY, NewBoardStart().Winner())

	board := NewBoardEmpty()
	board.Set(0, 0, LIGHT)
	require.Equal(t, LIGHT, board.Winner())
}

func TestBoard_ASCIIArtLines(t *testing.T) {
	lines := NewBoardStart().ASCIIArtLines(DARK)

	require.Len(t, lines, 10)
	require.Equal(t, "+-a-b-c-d-e-f-g-h-+", lines[0])
	require.Equal(t, "3         ·       |", lines[3])
	require.Equal(t, "4       ● ○ ·     |", lines[4])
	require.Equal(t, "+-----------------+", lines[9])
}

func TestBoard_Rows(t *testing.T) {
	rows := NewBoardStart().Rows()

	require.Len(t, rows, Size)
	require.Equal(t, DARK, rows[3][3])
	require.Equal(t, LIGHT, rows[3][4])
	require.Equal(t, EMPTY, rows[0][0])
}
