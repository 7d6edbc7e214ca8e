package bots

import (
	"fmt"

	"github.com/notnil/chess"
)

// NewbornBot always plays the first legal move in generator order.
// Being fully deterministic it makes a reproducible sparring partner.
type NewbornBot struct {
	color chess.Color
}

func NewNewbornBot(color chess.Color) *NewbornBot {
	return &NewbornBot{color: color}
}

func (b *NewbornBot) ChooseMove(pos *chess.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return moves[0], nil
}

func (b *NewbornBot) Name() string {
	return "first"
}
