package othello

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustField(t *testing.T, field string) Move {
	t.Helper()
	move, err := NewMoveFromField(field)
	require.NoError(t, err)
	return move
}

func TestNewGame(t *testing.T) {
	game := NewGame()

	require.Equal(t, DARK, game.Turn())
	require.Equal(t, NewBoardStart(), game.Board())
	require.Empty(t, game.Plies())
	require.False(t, game.IsOver())
	require.Equal(t, EMPTY, game.Winner())
}

func TestGame_PushMove(t *testing.T) {
	game := NewGame()

	require.NoError(t, game.PushMove(mustField(t, "e3")))
	require.Equal(t, LIGHT, game.Turn())
	require.Equal(t, []Ply{{Move: Move{Row: 2, Col: 4}, Player: DARK}}, game.Plies())

	board := game.Board()
	require.Equal(t, 4, board.CountChips(DARK))
	require.Equal(t, 1, board.CountChips(LIGHT))
}

func TestGame_PushMove_Illegal(t *testing.T) {
	game := NewGame()

	err := game.PushMove(mustField(t, "a1"))
	require.ErrorIs(t, err, ErrIllegalMove)

	err = game.PushMove(PassMove)
	require.ErrorIs(t, err, ErrIllegalMove)

	// Nothing changed.
	require.Equal(t, DARK, game.Turn())
	require.Empty(t, game.Plies())
}

func TestGame_PushMove_GameOver(t *testing.T) {
	start := boardFromRows(t,
		"xo------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
	)

	game := NewGameWithStart(start, DARK)
	require.NoError(t, game.PushMove(mustField(t, "c1")))

	// Only dark discs are left.
	require.True(t, game.IsOver())
	require.Equal(t, DARK, game.Winner())

	err := game.PushMove(mustField(t, "d1"))
	require.True(t, errors.Is(err, ErrGameOver))
}

func TestGame_AutomaticPass(t *testing.T) {
	// Light has no moves after dark plays c1, dark can continue.
	start := boardFromRows(t,
		"xo------",
		"-o------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"---x----",
	)

	game := NewGameWithStart(start, DARK)
	require.NoError(t, game.PushMove(mustField(t, "c1")))

	board := game.Board()
	require.False(t, board.HasMoves(LIGHT))
	require.True(t, board.HasMoves(DARK))
	require.Equal(t, DARK, game.Turn())
}

func TestGame_StartWithPass(t *testing.T) {
	start := boardFromRows(t,
		"xo------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
	)

	// Light cannot move on the start board, so dark moves first.
	game := NewGameWithStart(start, LIGHT)
	require.Equal(t, DARK, game.Turn())
}

func TestGame_PopMove(t *testing.T) {
	game := NewGame()
	game.PopMove()
	require.Empty(t, game.Plies())

	require.NoError(t, game.PushMove(mustField(t, "e3")))
	require.NoError(t, game.PushMove(mustField(t, "f3")))

	game.PopMove()
	require.Len(t, game.Plies(), 1)
	require.Equal(t, LIGHT, game.Turn())

	game.PopMove()
	require.Equal(t, NewBoardStart(), game.Board())
	require.Equal(t, DARK, game.Turn())
}

func TestGame_PopMovesOf(t *testing.T) {
	game := NewGame()
	require.NoError(t, game.PushMove(mustField(t, "e3")))
	require.NoError(t, game.PushMove(mustField(t, "f3")))
	require.NoError(t, game.PushMove(mustField(t, "g3")))

	game.PopMovesOf(LIGHT)
	require.Len(t, game.Plies(), 1)
	require.Equal(t, LIGHT, game.Turn())

	game.PopMovesOf(LIGHT)
	require.Empty(t, game.Plies())
}

func TestGame_Plies_ReturnsCopy(t *testing.T) {
	game := NewGame()
	require.NoError(t, game.PushMove(mustField(t, "e3")))

	plies := game.Plies()
	plies[0].Move = PassMove

	require.Equal(t, Move{Row: 2, Col: 4}, game.Plies()[0].Move)
}

func TestGame_JSON(t *testing.T) {
	game := NewGame()
	for _, field := range []string{"e3", "f3", "g3"} {
		require.NoError(t, game.PushMove(mustField(t, field)))
	}

	data, err := json.Marshal(game)
	require.NoError(t, err)

	var loaded Game
	require.NoError(t, json.Unmarshal(data, &loaded))

	require.Equal(t, game.Plies(), loaded.Plies())
	require.Equal(t, game.Board(), loaded.Board())
	require.Equal(t, game.Turn(), loaded.Turn())
}

func TestGame_JSON_Invalid(t *testing.T) {
	start := NewBoardStart().String()

	tests := []struct {
		name string
		data string
	}{
		{"bad board", `{"start": "x", "first": "dark", "plies": []}`},
		{"bad first", `{"start": "` + start + `", "first": "empty", "plies": []}`},
		{"illegal ply", `{"start": "` + start + `", "first": "dark", "plies": [{"move": "a1", "player": "dark"}]}`},
		{"wrong player", `{"start": "` + start + `", "first": "dark", "plies": [{"move": "e3", "player": "light"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var game Game
			require.Error(t, json.Unmarshal([]byte(tt.data), &game))
		})
	}
}
