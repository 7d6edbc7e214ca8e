package bots

import (
	"github.com/notnil/chess"
)

// pieceOrder is the fixed order in which piece kinds are summed.
var pieceOrder = [6]chess.PieceType{
	chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King,
}

// pieceWeights is shared by the material and weighted exchange evaluators.
// The king weight is a sentinel that dwarfs every other term.
var pieceWeights = map[chess.PieceType]float64{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3.25,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   1000,
}

func pieceValue(t chess.PieceType) float64 {
	return pieceWeights[t]
}

// MobilityEvaluator counts the legal moves of the side to move. Scored after
// our own move, that is the opponent's freedom on their next turn.
type MobilityEvaluator struct {
	color chess.Color
}

func NewMobilityEvaluator(color chess.Color) MobilityEvaluator {
	return MobilityEvaluator{color: color}
}

func (e MobilityEvaluator) Name() string {
	return "mobility"
}

func (e MobilityEvaluator) Evaluate(pos *chess.Position) (float64, error) {
	if pos == nil {
		return 0, ErrNilPosition
	}
	return float64(len(pos.ValidMoves())), nil
}

// MaterialEvaluator sums the weighted material of the opponent only.
type MaterialEvaluator struct {
	color chess.Color
}

func NewMaterialEvaluator(color chess.Color) MaterialEvaluator {
	return MaterialEvaluator{color: color}
}

func (e MaterialEvaluator) Name() string {
	return "material"
}

func (e MaterialEvaluator) Evaluate(pos *chess.Position) (float64, error) {
	if pos == nil {
		return 0, ErrNilPosition
	}
	return materialScore(pos.Board(), e.color.Other()), nil
}

func materialScore(board *chess.Board, c chess.Color) float64 {
	var score float64
	for _, t := range pieceOrder {
		score += pieceValue(t) * float64(len(piecesOf(board, t, c)))
	}
	return score
}

// ExchangeEvaluator scores attacks against our pieces minus our attacks
// against the opponent's pieces. Every attacked piece counts once per attacker.
type ExchangeEvaluator struct {
	color chess.Color
}

func NewExchangeEvaluator(color chess.Color) ExchangeEvaluator {
	return ExchangeEvaluator{color: color}
}

func (e ExchangeEvaluator) Name() string {
	return "exchange"
}

func (e ExchangeEvaluator) Evaluate(pos *chess.Position) (float64, error) {
	if pos == nil {
		return 0, ErrNilPosition
	}
	return exchangeScore(pos.Board(), e.color, func(chess.PieceType) float64 { return 1 }), nil
}

// WeightedExchangeEvaluator is ExchangeEvaluator with each attacker count
// multiplied by the weight of the attacked piece.
type WeightedExchangeEvaluator struct {
	color chess.Color
}

func NewWeightedExchangeEvaluator(color chess.Color) WeightedExchangeEvaluator {
	return WeightedExchangeEvaluator{color: color}
}

func (e WeightedExchangeEvaluator) Name() string {
	return "weighted-exchange"
}

func (e WeightedExchangeEvaluator) Evaluate(pos *chess.Position) (float64, error) {
	if pos == nil {
		return 0, ErrNilPosition
	}
	return exchangeScore(pos.Board(), e.color, pieceValue), nil
}

func exchangeScore(board *chess.Board, us chess.Color, weight func(chess.PieceType) float64) float64 {
	bb := newBoardBitboards(board)
	them := us.Other()

	var attacking, attacked float64
	for _, t := range pieceOrder {
		w := weight(t)
		for _, sq := range piecesOf(board, t, them) {
			attacking += w * float64(bb.attackerCount(us, sq))
		}
		for _, sq := range piecesOf(board, t, us) {
			attacked += w * float64(bb.attackerCount(them, sq))
		}
	}
	return attacked - attacking
}
