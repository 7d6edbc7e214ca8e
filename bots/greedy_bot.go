package bots

import (
	"context"
	"fmt"
	"math"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// GreedyBot looks one ply ahead and plays the move whose resulting position
// its evaluator scores lowest. Ties go to a uniformly random candidate.
type GreedyBot struct {
	// Workers > 1 scores candidate moves concurrently.
	Workers   int
	Evaluator Evaluator
	color     chess.Color
	rng       *rand.Rand
}

func NewGreedyBot(eval Evaluator, color chess.Color, rng *rand.Rand) *GreedyBot {
	return &GreedyBot{
		Workers:   1,
		Evaluator: eval,
		color:     color,
		rng:       orClock(rng),
	}
}

func (b *GreedyBot) Name() string {
	return b.Evaluator.Name()
}

type scoredMove struct {
	move  *chess.Move
	score float64
}

func (b *GreedyBot) ChooseMove(pos *chess.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	// The shuffle is the only tie-breaker: the first strictly better move wins.
	moves = append([]*chess.Move(nil), moves...)
	b.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	scores, err := b.scoreAll(pos, moves)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	best := scoredMove{move: moves[0], score: math.Inf(1)}
	for i, score := range scores {
		if score < best.score {
			best = scoredMove{moves[i], score}
		}
	}

	log.Debug().
		Str("bot", b.Name()).
		Str("move", best.move.String()).
		Float64("score", best.score).
		Int("candidates", len(moves)).
		Msg("move chosen")
	return best.move, nil
}

// scoreAll returns the evaluation of every branch, indexed like moves.
func (b *GreedyBot) scoreAll(pos *chess.Position, moves []*chess.Move) ([]float64, error) {
	scores := make([]float64, len(moves))
	if b.Workers <= 1 {
		for i, move := range moves {
			score, err := b.scoreBranch(pos, move)
			if err != nil {
				return nil, err
			}
			scores[i] = score
		}
		return scores, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(b.Workers)
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score, err := b.scoreBranch(pos, move)
			if err != nil {
				return err
			}
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// scoreBranch evaluates pos after move on a fresh copy.
func (b *GreedyBot) scoreBranch(pos *chess.Position, move *chess.Move) (float64, error) {
	next := pos.Update(move)
	if next == nil {
		return 0, fmt.Errorf("apply %s: %w", move, ErrNilPosition)
	}
	score, err := b.Evaluator.Evaluate(next)
	if err != nil {
		return 0, fmt.Errorf("evaluate %s: %w", move, err)
	}
	return score, nil
}
