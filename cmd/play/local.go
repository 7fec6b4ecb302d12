package main

import (
	"context"
	"fmt"

	"github.com/lk16/othello-arena/internal/models"
	"github.com/lk16/othello-arena/internal/othello"
	"github.com/lk16/othello-arena/internal/session"
)

// backend runs games, either in process or on a server.
type backend interface {
	NewGame(ctx context.Context, humanColor othello.Cell) (models.GameState, error)
	PlayMove(ctx context.Context, id string, move othello.Move) (models.GameState, error)
	ComputerMove(ctx context.Context, id string) (models.ComputerMoveResponse, error)
	Undo(ctx context.Context, id string) (models.GameState, error)
}

// localBackend plays a single game in process.
type localBackend struct {
	session *session.Session
}

func (l *localBackend) get(id string) (*session.Session, error) {
	if l.session == nil || l.session.ID != id {
		return nil, fmt.Errorf("unknown game: %s", id)
	}
	return l.session, nil
}

func (l *localBackend) NewGame(_ context.Context, humanColor othello.Cell) (models.GameState, error) {
	s, err := session.New(humanColor)
	if err != nil {
		return models.GameState{}, err
	}

	l.session = s
	return s.State(), nil
}

func (l *localBackend) PlayMove(_ context.Context, id string, move othello.Move) (models.GameState, error) {
	s, err := l.get(id)
	if err != nil {
		return models.GameState{}, err
	}

	if err = s.PlayHuman(move); err != nil {
		return models.GameState{}, err
	}

	return s.State(), nil
}

func (l *localBackend) ComputerMove(_ context.Context, id string) (models.ComputerMoveResponse, error) {
	s, err := l.get(id)
	if err != nil {
		return models.ComputerMoveResponse{}, err
	}

	result, err := s.PlayComputer()
	if err != nil {
		return models.ComputerMoveResponse{}, err
	}

	return models.ComputerMoveResponse{
		Move:   result.Move,
		Passed: !result.Found,
		Score:  result.Score,
		Nodes:  result.Nodes,
		Game:   s.State(),
	}, nil
}

func (l *localBackend) Undo(_ context.Context, id string) (models.GameState, error) {
	s, err := l.get(id)
	if err != nil {
		return models.GameState{}, err
	}

	s.Undo()
	return s.State(), nil
}
