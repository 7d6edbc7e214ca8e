package game

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"greedychess/bots"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedBot plays a fixed list of UCI moves.
type scriptedBot struct {
	moves []string
}

func (b *scriptedBot) ChooseMove(pos *chess.Position) (*chess.Move, error) {
	if len(b.moves) == 0 {
		return nil, errScriptExhausted
	}
	move, err := chess.UCINotation{}.Decode(pos, b.moves[0])
	if err != nil {
		return nil, err
	}
	b.moves = b.moves[1:]
	return move, nil
}

func (b *scriptedBot) Name() string { return "scripted" }

func TestPlay(t *testing.T) {
	t.Run("scripted checkmate", func(t *testing.T) {
		white := &scriptedBot{moves: []string{"f2f3", "g2g4"}}
		black := &scriptedBot{moves: []string{"e7e5", "d8h4"}}
		res, err := Play(context.Background(), white, black)
		require.NoError(t, err)
		require.Equal(t, chess.BlackWon, res.Outcome)
		require.Equal(t, chess.Checkmate, res.Method)
		require.Equal(t, "black", res.Winner())
		require.Equal(t, 4, res.Plies)
	})

	t.Run("random bots reach an outcome", func(t *testing.T) {
		white := bots.NewRandomBot(chess.White, rand.New(rand.NewSource(1)))
		black := bots.NewRandomBot(chess.Black, rand.New(rand.NewSource(2)))
		res, err := Play(context.Background(), white, black)
		require.NoError(t, err)
		require.NotEqual(t, chess.NoOutcome, res.Outcome)
		require.Greater(t, res.Plies, 0)
	})

	t.Run("greedy against random", func(t *testing.T) {
		white := bots.NewGreedyBot(bots.NewMaterialEvaluator(chess.White), chess.White, rand.New(rand.NewSource(3)))
		black := bots.NewRandomBot(chess.Black, rand.New(rand.NewSource(4)))
		res, err := Play(context.Background(), white, black)
		require.NoError(t, err)
		require.NotEqual(t, chess.NoOutcome, res.Outcome)
	})

	t.Run("bot errors propagate", func(t *testing.T) {
		white := &scriptedBot{moves: []string{"e2e4"}}
		black := &scriptedBot{}
		_, err := Play(context.Background(), white, black)
		require.ErrorIs(t, err, errScriptExhausted)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Play(ctx, bots.NewNewbornBot(chess.White), bots.NewNewbornBot(chess.Black))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestHeadToHead(t *testing.T) {
	t.Run("every ordered pairing plays every game", func(t *testing.T) {
		cfg := TournamentConfig{Games: 2, Concurrency: 3, Workers: 1, Seed: 9}
		pairings, err := HeadToHead(context.Background(), []string{"random", "first", "material"}, cfg)
		require.NoError(t, err)
		require.Len(t, pairings, 6)
		require.Equal(t, "random", pairings[0].White)
		require.Equal(t, "first", pairings[0].Black)
		for _, p := range pairings {
			require.NotEqual(t, p.White, p.Black)
			require.Equal(t, cfg.Games, p.WhiteWins+p.BlackWins+p.Draws, p.String())
		}
	})

	t.Run("unknown bot", func(t *testing.T) {
		_, err := HeadToHead(context.Background(), []string{"random", "nobody"}, TournamentConfig{Games: 1})
		require.ErrorIs(t, err, bots.ErrUnknownBot)
	})

	t.Run("pairing summary", func(t *testing.T) {
		p := Pairing{White: "material", Black: "random", WhiteWins: 3, BlackWins: 1, Draws: 6}
		require.Equal(t, "material : random went 3W/1B/6D", p.String())
	})
}

func TestPlayHuman(t *testing.T) {
	t.Run("human delivers mate", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("e5\nQh4\n")
		engine := &scriptedBot{moves: []string{"f2f3", "g2g4"}}
		res, err := PlayHuman(context.Background(), in, &out, chess.Black, engine)
		require.NoError(t, err)
		require.Equal(t, chess.BlackWon, res.Outcome)
		require.Contains(t, out.String(), "scripted plays f3")
	})

	t.Run("board is drawn from the human's side", func(t *testing.T) {
		board := chess.NewGame().Position().Board()

		white := strings.Split(drawBoard(board, chess.White), "\n")
		require.Equal(t, "  a b c d e f g h", white[0])
		require.True(t, strings.HasPrefix(white[1], "8"))
		require.True(t, strings.HasPrefix(white[8], "1"))

		black := strings.Split(drawBoard(board, chess.Black), "\n")
		require.Equal(t, "  h g f e d c b a", black[0])
		require.True(t, strings.HasPrefix(black[1], "1"))
		require.True(t, strings.HasPrefix(black[8], "8"))
		require.Equal(t, "5 - - - - - - - -", black[5])
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("Ke7\n")
		_, err := PlayHuman(context.Background(), in, &out, chess.White, bots.NewNewbornBot(chess.Black))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.Contains(t, out.String(), "Invalid move, try again")
		require.Contains(t, out.String(), "SAN move: ")
	})
}
