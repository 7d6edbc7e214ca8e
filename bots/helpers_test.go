package bots

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const (
	exchangeFEN   = "1rbr2k1/p1p2ppp/1pn2q2/2n1p3/4PbPP/2P2PN1/PPQNBB2/2KR3R w - - 1 16"
	hangingQueen  = "q3k3/8/8/8/8/8/8/R3K3 w - - 0 1"
	twoKingMoves  = "8/8/8/8/8/2k5/8/K7 w - - 0 1"
	oneReply      = "7k/8/8/8/8/8/8/K5R1 b - - 0 1"
	foolsMateDone = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
)

func positionFromFEN(t *testing.T, fen string) *chess.Position {
	t.Helper()
	opt, err := chess.FEN(fen)
	require.NoError(t, err)
	return chess.NewGame(opt).Position()
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func containsMove(moves []*chess.Move, m *chess.Move) bool {
	for _, candidate := range moves {
		if candidate.String() == m.String() {
			return true
		}
	}
	return false
}
