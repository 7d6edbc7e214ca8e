// bot.go
package bots

import (
	"errors"

	"github.com/notnil/chess"
)

var (
	// ErrNoLegalMoves is returned when a bot is asked to move in a finished position.
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrNilPosition  = errors.New("nil position")
	ErrUnknownBot   = errors.New("unknown bot")
)

// ChessBot интерфейс для всех ботов
type ChessBot interface {
	// ChooseMove returns one of pos.ValidMoves(). pos itself is never modified.
	ChooseMove(pos *chess.Position) (*chess.Move, error)
	Name() string
}

// Evaluator scores a position from the perspective of the color it was built for.
// Lower is better for that color.
type Evaluator interface {
	Evaluate(pos *chess.Position) (float64, error)
	Name() string
}
