package search

import (
	"errors"

	"github.com/lk16/othello-arena/internal/othello"
)

var ErrAlreadyExpanded = errors.New("node is already expanded")

// Node is a board in the game tree, together with the move that led to it.
type Node struct {
	// board is owned by this node and never shared with other nodes.
	board othello.Board

	// move is the move that produced board, or othello.PassMove for a root or a forced pass.
	move othello.Move

	// children contains one node per legal continuation, in row-major move order.
	children []*Node

	// expanded is set once children were generated, even if there are none.
	expanded bool
}

// NewNode creates an unexpanded node. The board is copied.
func NewNode(board othello.Board, move othello.Move) *Node {
	return &Node{
		board: board,
		move:  move,
	}
}

// NewRoot creates a node without a move.
func NewRoot(board othello.Board) *Node {
	return NewNode(board, othello.PassMove)
}

// Board returns a copy of the board of the node.
func (n *Node) Board() othello.Board {
	return n.board
}

// Move returns the move that produced this node.
func (n *Node) Move() othello.Move {
	return n.move
}

// Children returns the child nodes. It is empty before Expand is called.
func (n *Node) Children() []*Node {
	return n.children
}

// IsExpanded checks if Expand was called on this node.
func (n *Node) IsExpanded() bool {
	return n.expanded
}

// Evaluate returns the disc differential: dark discs minus light discs.
func (n *Node) Evaluate() int {
	return n.board.CountChips(othello.DARK) - n.board.CountChips(othello.LIGHT)
}

// Score returns the disc differential from the perspective of player.
func (n *Node) Score(player othello.Cell) int {
	if player == othello.LIGHT {
		return -n.Evaluate()
	}
	return n.Evaluate()
}

// Expand adds a child for every legal move of player. If player has to pass while the
// opponent can still move, a single pass child with an unchanged board is added.
// Expand can only be called once per node.
func (n *Node) Expand(player othello.Cell) error {
	if n.expanded {
		return ErrAlreadyExpanded
	}

	n.expand(player)
	return nil
}

// expand generates children, it assumes the node was not expanded yet.
func (n *Node) expand(player othello.Cell) {
	n.expanded = true

	moves := n.board.LegalMoves(player)

	if len(moves) == 0 {
		if n.board.HasMoves(player.Opponent()) {
			n.children = []*Node{NewNode(n.board, othello.PassMove)}
		}
		return
	}

	n.children = make([]*Node, 0, len(moves))
	for _, move := range moves {
		n.children = append(n.children, NewNode(n.board.DoMove(move, player), move))
	}
}

// countNodes returns the size of the subtree rooted at n.
func (n *Node) countNodes() int {
	count := 1
	for _, child := range n.children {
		count += child.countNodes()
	}
	return count
}
