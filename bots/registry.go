package bots

import (
	"fmt"
	"sort"

	"github.com/notnil/chess"
	"golang.org/x/exp/rand"
)

type evaluatorFactory func(color chess.Color) Evaluator

var evaluators = map[string]evaluatorFactory{
	"mobility":          func(c chess.Color) Evaluator { return NewMobilityEvaluator(c) },
	"material":          func(c chess.Color) Evaluator { return NewMaterialEvaluator(c) },
	"exchange":          func(c chess.Color) Evaluator { return NewExchangeEvaluator(c) },
	"weighted-exchange": func(c chess.Color) Evaluator { return NewWeightedExchangeEvaluator(c) },
}

// Names lists every bot New can build, sorted.
func Names() []string {
	names := []string{"random", "first"}
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named bot for color. workers only affects evaluating bots.
func New(name string, color chess.Color, rng *rand.Rand, workers int) (ChessBot, error) {
	switch name {
	case "random":
		return NewRandomBot(color, rng), nil
	case "first":
		return NewNewbornBot(color), nil
	}
	factory, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBot, name)
	}
	bot := NewGreedyBot(factory(color), color, rng)
	if workers > 1 {
		bot.Workers = workers
	}
	return bot, nil
}
