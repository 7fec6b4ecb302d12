package search

import (
	"log/slog"
	"math"

	"github.com/lk16/othello-arena/internal/othello"
)

// Horizon is the number of plies looked at from the current position:
// the candidate move and the reply of the opponent.
const Horizon = 2

// Result is the outcome of a search.
type Result struct {
	// Move is the best move, or othello.PassMove if Found is false.
	Move othello.Move `json:"move"`

	// Found is false if the searching player has no legal moves and has to pass.
	Found bool `json:"found"`

	// Score is the disc differential from the perspective of the searching player.
	Score int `json:"score"`

	// Nodes is the number of tree nodes created during the search.
	Nodes int `json:"nodes"`
}

// BestMove returns the move player should play on board.
// The second return value is false if player has no legal moves.
func BestMove(board othello.Board, player othello.Cell) (othello.Move, bool) {
	result := Search(board, player)
	return result.Move, result.Found
}

// Search finds the move that maximizes the disc differential for player, assuming the
// opponent replies with the move that minimizes it. Ties keep the first move in
// row-major order.
func Search(board othello.Board, player othello.Cell) Result {
	moves := board.LegalMoves(player)

	if len(moves) == 0 {
		return Result{Move: othello.PassMove}
	}

	if len(moves) == 1 {
		node := NewNode(board.DoMove(moves[0], player), moves[0])
		return Result{
			Move:  moves[0],
			Found: true,
			Score: node.Score(player),
			Nodes: 1,
		}
	}

	result := Result{
		Move:  othello.PassMove,
		Found: true,
		Score: math.MinInt,
	}

	for _, move := range moves {
		node := NewNode(board.DoMove(move, player), move)
		score := minimax(node, player.Opponent(), player, Horizon-1)
		result.Nodes += node.countNodes()

		if score > result.Score {
			result.Score = score
			result.Move = move
		}
	}

	slog.Debug(
		"Search done",
		"player", player,
		"move", result.Move,
		"score", result.Score,
		"candidates", len(moves),
		"nodes", result.Nodes,
	)

	return result
}

// minimax scores node for player, where toMove is the player to move on the node board.
// Nodes where player moves are maximized, nodes where the opponent moves are minimized.
func minimax(node *Node, toMove, player othello.Cell, depth int) int {
	if depth == 0 {
		return node.Score(player)
	}

	node.expand(toMove)

	// Neither side can move.
	if len(node.children) == 0 {
		return node.Score(player)
	}

	maximizing := toMove == player

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	for _, child := range node.children {
		score := minimax(child, toMove.Opponent(), player, depth-1)

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
