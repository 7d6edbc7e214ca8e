package bots

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

var (
	knightMasks [64]uint64
	kingMasks   [64]uint64
	// pawnAttackers[c][sq] holds the squares from which a pawn of color c attacks sq.
	pawnAttackers [2][64]uint64
)

func init() {
	knightJumps := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		for _, d := range knightJumps {
			knightMasks[sq] |= maskAt(file+d[0], rank+d[1])
		}
		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				if df != 0 || dr != 0 {
					kingMasks[sq] |= maskAt(file+df, rank+dr)
				}
			}
		}
		// A white pawn attacks one rank up, so its attackers sit one rank down.
		pawnAttackers[0][sq] = maskAt(file-1, rank-1) | maskAt(file+1, rank-1)
		pawnAttackers[1][sq] = maskAt(file-1, rank+1) | maskAt(file+1, rank+1)
	}
}

func maskAt(file, rank int) uint64 {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0
	}
	return 1 << uint(rank*8+file)
}

// boardBitboards splits a notnil board into per-side bitboards.
// Bit 0 is a1 and bit 63 is h8 in both libraries.
type boardBitboards struct {
	white, black dragontoothmg.Bitboards
}

func newBoardBitboards(board *chess.Board) *boardBitboards {
	bb := &boardBitboards{}
	for sq, piece := range board.SquareMap() {
		side := bb.side(piece.Color())
		if side == nil {
			continue
		}
		bit := uint64(1) << uint(sq)
		switch piece.Type() {
		case chess.Pawn:
			side.Pawns |= bit
		case chess.Knight:
			side.Knights |= bit
		case chess.Bishop:
			side.Bishops |= bit
		case chess.Rook:
			side.Rooks |= bit
		case chess.Queen:
			side.Queens |= bit
		case chess.King:
			side.Kings |= bit
		default:
			continue
		}
		side.All |= bit
	}
	return bb
}

func (bb *boardBitboards) side(c chess.Color) *dragontoothmg.Bitboards {
	switch c {
	case chess.White:
		return &bb.white
	case chess.Black:
		return &bb.black
	}
	return nil
}

// attackers returns the squares of every piece of color by that attacks sq.
// Pins are ignored and sliders stop at the first occupied square.
func (bb *boardBitboards) attackers(by chess.Color, sq chess.Square) uint64 {
	side := bb.side(by)
	if side == nil {
		return 0
	}
	occupied := bb.white.All | bb.black.All
	target := uint8(sq)

	var hits uint64
	if by == chess.White {
		hits |= pawnAttackers[0][sq] & side.Pawns
	} else {
		hits |= pawnAttackers[1][sq] & side.Pawns
	}
	hits |= knightMasks[sq] & side.Knights
	hits |= kingMasks[sq] & side.Kings
	hits |= dragontoothmg.CalculateBishopMoveBitboard(target, occupied) & (side.Bishops | side.Queens)
	hits |= dragontoothmg.CalculateRookMoveBitboard(target, occupied) & (side.Rooks | side.Queens)
	return hits
}

func (bb *boardBitboards) attackerCount(by chess.Color, sq chess.Square) int {
	return bits.OnesCount64(bb.attackers(by, sq))
}

// piecesOf returns the squares holding pieces of type t and color c.
func piecesOf(board *chess.Board, t chess.PieceType, c chess.Color) []chess.Square {
	want := chess.NewPiece(t, c)
	var squares []chess.Square
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if board.Piece(sq) == want {
			squares = append(squares, sq)
		}
	}
	return squares
}
