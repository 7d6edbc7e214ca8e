package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"greedychess/bots"
	"greedychess/game"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Config struct {
	Mode        string
	Games       int
	Concurrency int
	Workers     int
	Seed        uint64
	Bots        string
	Color       string
	Engine      string
	LogLevel    string
}

var config Config

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("greedychess")
	}
}

func run() error {
	flag.StringVar(&config.Mode, "mode", "tournament", "tournament or play")
	flag.IntVar(&config.Games, "games", 100, "Games per ordered pairing")
	flag.IntVar(&config.Concurrency, "concurrency", runtime.GOMAXPROCS(0), "Games played concurrently")
	flag.IntVar(&config.Workers, "workers", 1, "Branch-scoring workers per bot")
	flag.Uint64Var(&config.Seed, "seed", 0, "Base seed, 0 picks one from the clock")
	flag.StringVar(&config.Bots, "bots", "mobility,random,material,exchange,weighted-exchange", "Comma-separated bots for the tournament")
	flag.StringVar(&config.Color, "color", "w", "Human color in play mode (w or b)")
	flag.StringVar(&config.Engine, "engine", "mobility", "Opponent in play mode: "+strings.Join(bots.Names(), ", "))
	flag.StringVar(&config.LogLevel, "log-level", "info", "zerolog level")
	flag.Parse()

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixNano())
	}
	log.Info().Interface("config", config).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch config.Mode {
	case "tournament":
		_, err := game.HeadToHead(ctx, strings.Split(config.Bots, ","), game.TournamentConfig{
			Games:       config.Games,
			Concurrency: config.Concurrency,
			Workers:     config.Workers,
			Seed:        config.Seed,
		})
		return err
	case "play":
		return play(ctx)
	}
	return fmt.Errorf("unknown mode %q", config.Mode)
}

func play(ctx context.Context) error {
	human := chess.White
	if strings.EqualFold(config.Color, "b") {
		human = chess.Black
	}
	engine, err := bots.New(config.Engine, human.Other(), rand.New(rand.NewSource(config.Seed)), config.Workers)
	if err != nil {
		return err
	}
	_, err = game.PlayHuman(ctx, os.Stdin, os.Stdout, human, engine)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
