package search

import (
	"strings"
	"testing"

	"github.com/lk16/othello-arena/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	afterThreeMoves := "----------------" + "----xxx-" + "---xo---" + "---ox---" + strings.Repeat("-", 24)
	midGame := "--x-x---o-xxx---ooxox---o-xoxx---xxooo------ooo-----------------"

	tests := []struct {
		name      string
		board     string
		player    othello.Cell
		wantMove  othello.Move
		wantScore int
		wantNodes int
	}{
		{"start dark", othello.NewBoardStart().String(), othello.DARK, othello.Move{Row: 2, Col: 4}, 0, 16},
		{"start light", othello.NewBoardStart().String(), othello.LIGHT, othello.Move{Row: 2, Col: 3}, 0, 16},
		{"three moves light", afterThreeMoves, othello.LIGHT, othello.Move{Row: 1, Col: 6}, -3, 34},
		{"three moves dark", afterThreeMoves, othello.DARK, othello.Move{Row: 5, Col: 2}, 8, 17},
		{"mid game dark", midGame, othello.DARK, othello.Move{Row: 5, Col: 3}, 0, 99},
		{"mid game light", midGame, othello.LIGHT, othello.Move{Row: 0, Col: 3}, -4, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.board)

			result := Search(board, tt.player)

			require.True(t, result.Found)
			require.Equal(t, tt.wantMove, result.Move)
			require.Equal(t, tt.wantScore, result.Score)
			require.Equal(t, tt.wantNodes, result.Nodes)
			require.True(t, board.IsLegalMove(result.Move.Row, result.Move.Col, tt.player))
		})
	}
}

func TestSearch_DoesNotModifyBoard(t *testing.T) {
	board := othello.NewBoardStart()
	Search(board, othello.DARK)
	require.Equal(t, othello.NewBoardStart(), board)
}

func TestBestMove_NoMoves(t *testing.T) {
	// Light has no moves, even though dark does.
	board := mustBoard(t, "xo"+strings.Repeat("-", 62))
	require.True(t, board.HasMoves(othello.DARK))

	move, ok := BestMove(board, othello.LIGHT)
	require.False(t, ok)
	require.True(t, move.IsPass())

	result := Search(board, othello.LIGHT)
	require.False(t, result.Found)
	require.Zero(t, result.Nodes)
}

func TestBestMove_SingleMove(t *testing.T) {
	board := mustBoard(t, "xo"+strings.Repeat("-", 62))

	move, ok := BestMove(board, othello.DARK)
	require.True(t, ok)
	require.Equal(t, othello.Move{Row: 0, Col: 2}, move)

	result := Search(board, othello.DARK)
	require.Equal(t, 1, result.Nodes)
	require.Equal(t, 3, result.Score)
}

func TestBestMove_GameOver(t *testing.T) {
	board := mustBoard(t, strings.Repeat("xo", 32))

	_, ok := BestMove(board, othello.DARK)
	require.False(t, ok)

	_, ok = BestMove(board, othello.LIGHT)
	require.False(t, ok)
}

func TestBestMove_Symmetric(t *testing.T) {
	// Swapping colors on the board and swapping the searching player gives the same move.
	board := mustBoard(t, "--x-x---o-xxx---ooxox---o-xoxx---xxooo------ooo-----------------")

	swapped := othello.NewBoardEmpty()
	for row := range othello.Size {
		for col := range othello.Size {
			swapped.Set(row, col, board.Get(row, col).Opponent())
		}
	}

	for _, player := range []othello.Cell{othello.DARK, othello.LIGHT} {
		want := Search(board, player)
		got := Search(swapped, player.Opponent())

		require.Equal(t, want.Move, got.Move)
		require.Equal(t, want.Score, got.Score)
	}
}

func TestMinimax_OpponentPasses(t *testing.T) {
	// After dark plays c1 light has to pass and dark moves again within the horizon.
	board := mustBoard(t, "xo------"+"-o------"+strings.Repeat("-", 40)+"---x----")
	node := NewNode(board.DoMove(othello.Move{Row: 0, Col: 2}, othello.DARK), othello.Move{Row: 0, Col: 2})

	score := minimax(node, othello.LIGHT, othello.DARK, Horizon-1)

	require.Len(t, node.Children(), 1)
	require.True(t, node.Children()[0].Move().IsPass())
	require.Equal(t, node.Score(othello.DARK), score)
}
