package game

import (
	"context"
	"fmt"
	"sync"

	"greedychess/bots"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type TournamentConfig struct {
	// Games per ordered pairing.
	Games       int
	Concurrency int
	// Workers is passed to every evaluating bot.
	Workers int
	Seed    uint64
}

// Pairing tallies the games one bot played as white against another.
type Pairing struct {
	White, Black string
	WhiteWins    int
	BlackWins    int
	Draws        int
}

func (p Pairing) String() string {
	return fmt.Sprintf("%s : %s went %dW/%dB/%dD", p.White, p.Black, p.WhiteWins, p.BlackWins, p.Draws)
}

type gameInfo struct {
	pairing    int
	gameNumber int
	white      string
	black      string
}

type gameResult struct {
	gameInfo gameInfo
	result   Result
}

// HeadToHead plays cfg.Games games for every ordered pair of distinct bots.
// Pairings come back in the order they were formed from names.
func HeadToHead(ctx context.Context, names []string, cfg TournamentConfig) ([]Pairing, error) {
	for _, name := range names {
		if _, err := bots.New(name, chess.White, nil, 1); err != nil {
			return nil, err
		}
	}

	var pairings []Pairing
	for _, a := range names {
		for _, b := range names {
			if a != b {
				pairings = append(pairings, Pairing{White: a, Black: b})
			}
		}
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		n := 0
		for i, p := range pairings {
			for j := 0; j < cfg.Games; j++ {
				info := gameInfo{pairing: i, gameNumber: n, white: p.White, black: p.Black}
				n++
				select {
				case <-ctx.Done():
					return ctx.Err()
				case gameInfos <- info:
				}
			}
		}
		return nil
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, cfg, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	g.Go(func() error {
		for res := range gameResults {
			p := &pairings[res.gameInfo.pairing]
			switch res.result.Outcome {
			case chess.WhiteWon:
				p.WhiteWins++
			case chess.BlackWon:
				p.BlackWins++
			default:
				p.Draws++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, p := range pairings {
		log.Info().Msg(p.String())
	}
	return pairings, nil
}

func playGames(
	ctx context.Context,
	cfg TournamentConfig,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for info := range gameInfos {
		// Every game gets fresh bots with their own sources.
		seed := cfg.Seed + 2*uint64(info.gameNumber)
		white, err := bots.New(info.white, chess.White, rand.New(rand.NewSource(seed)), cfg.Workers)
		if err != nil {
			return err
		}
		black, err := bots.New(info.black, chess.Black, rand.New(rand.NewSource(seed+1)), cfg.Workers)
		if err != nil {
			return err
		}

		res, err := Play(ctx, white, black)
		if err != nil {
			return fmt.Errorf("game %d (%s vs %s): %w", info.gameNumber, info.white, info.black, err)
		}
		log.Info().
			Int("game", info.gameNumber).
			Str("white", info.white).
			Str("black", info.black).
			Str("result", res.Outcome.String()).
			Str("method", res.Method.String()).
			Int("plies", res.Plies).
			Msg("finished game")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- gameResult{gameInfo: info, result: res}:
		}
	}
	return nil
}
