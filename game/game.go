// Package game runs bots against each other or against a human.
package game

import (
	"context"
	"fmt"

	"greedychess/bots"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

// Result describes a finished game.
type Result struct {
	Outcome chess.Outcome
	Method  chess.Method
	Plies   int
	FEN     string
}

// Winner returns "white", "black" or "draw".
func (r Result) Winner() string {
	switch r.Outcome {
	case chess.WhiteWon:
		return "white"
	case chess.BlackWon:
		return "black"
	}
	return "draw"
}

// Play runs a game from the initial position until it ends. Threefold
// repetition and fifty-move draws are claimed as soon as they become available.
func Play(ctx context.Context, white, black bots.ChessBot) (Result, error) {
	g := chess.NewGame()
	for g.Outcome() == chess.NoOutcome {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		bot := white
		if g.Position().Turn() == chess.Black {
			bot = black
		}
		if err := playBotMove(g, bot); err != nil {
			return Result{}, err
		}
		if err := claimDraw(g); err != nil {
			return Result{}, err
		}
	}

	res := resultOf(g)
	log.Debug().
		Str("white", white.Name()).
		Str("black", black.Name()).
		Str("winner", res.Winner()).
		Str("method", res.Method.String()).
		Int("plies", res.Plies).
		Msg("game finished")
	return res, nil
}

func playBotMove(g *chess.Game, bot bots.ChessBot) error {
	ply := len(g.Moves()) + 1
	move, err := bot.ChooseMove(g.Position())
	if err != nil {
		return fmt.Errorf("ply %d: %w", ply, err)
	}
	if err := g.Move(move); err != nil {
		return fmt.Errorf("ply %d: %s played %s: %w", ply, bot.Name(), move, err)
	}
	return nil
}

func claimDraw(g *chess.Game) error {
	if g.Outcome() != chess.NoOutcome {
		return nil
	}
	for _, method := range g.EligibleDraws() {
		if method == chess.ThreefoldRepetition || method == chess.FiftyMoveRule {
			return g.Draw(method)
		}
	}
	return nil
}

func resultOf(g *chess.Game) Result {
	return Result{
		Outcome: g.Outcome(),
		Method:  g.Method(),
		Plies:   len(g.Moves()),
		FEN:     g.Position().String(),
	}
}
