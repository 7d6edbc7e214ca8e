package bots

import (
	"fmt"
	"time"

	"github.com/notnil/chess"
	"golang.org/x/exp/rand"
)

// RandomBot plays a uniformly random legal move.
type RandomBot struct {
	color chess.Color
	rng   *rand.Rand
}

func NewRandomBot(color chess.Color, rng *rand.Rand) *RandomBot {
	return &RandomBot{color: color, rng: orClock(rng)}
}

func (b *RandomBot) ChooseMove(pos *chess.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return moves[b.rng.Intn(len(moves))], nil
}

func (b *RandomBot) Name() string {
	return "random"
}

// legalMoves enforces the preconditions shared by every bot. Bots move for
// whichever side is to play; the bound color only sets the evaluation perspective.
func legalMoves(pos *chess.Position) ([]*chess.Move, error) {
	if pos == nil {
		return nil, ErrNilPosition
	}
	moves := pos.ValidMoves()
	if len(moves) == 0 {
		return nil, ErrNoLegalMoves
	}
	return moves, nil
}

func orClock(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
