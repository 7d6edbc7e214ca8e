package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"greedychess/bots"

	"github.com/notnil/chess"
)

// PlayHuman lets a human read from in play humanColor against bot.
// Moves are entered in SAN, one per line.
func PlayHuman(ctx context.Context, in io.Reader, out io.Writer, humanColor chess.Color, bot bots.ChessBot) (Result, error) {
	g := chess.NewGame()
	scanner := bufio.NewScanner(in)
	for g.Outcome() == chess.NoOutcome {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		pos := g.Position()
		if pos.Turn() != humanColor {
			move, err := bot.ChooseMove(pos)
			if err != nil {
				return Result{}, err
			}
			san := chess.AlgebraicNotation{}.Encode(pos, move)
			if err := g.Move(move); err != nil {
				return Result{}, fmt.Errorf("engine attempted invalid move %s: %w", move, err)
			}
			fmt.Fprintf(out, "%s plays %s\n", bot.Name(), san)
			continue
		}

		fmt.Fprint(out, drawBoard(pos.Board(), humanColor))
		fmt.Fprint(out, "SAN move: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Result{}, err
			}
			return Result{}, io.ErrUnexpectedEOF
		}
		move, err := chess.AlgebraicNotation{}.Decode(pos, strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "Invalid move, try again")
			continue
		}
		if err := g.Move(move); err != nil {
			fmt.Fprintln(out, "Invalid move, try again")
		}
	}

	res := resultOf(g)
	fmt.Fprintf(out, "%s%s by %s\n", drawBoard(g.Position().Board(), humanColor), res.Outcome, res.Method)
	return res, nil
}

// drawBoard renders board with perspective's pieces at the bottom.
func drawBoard(board *chess.Board, perspective chess.Color) string {
	ranks := []chess.Rank{chess.Rank8, chess.Rank7, chess.Rank6, chess.Rank5, chess.Rank4, chess.Rank3, chess.Rank2, chess.Rank1}
	files := []chess.File{chess.FileA, chess.FileB, chess.FileC, chess.FileD, chess.FileE, chess.FileF, chess.FileG, chess.FileH}
	if perspective == chess.Black {
		for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
			ranks[i], ranks[j] = ranks[j], ranks[i]
			files[i], files[j] = files[j], files[i]
		}
	}

	var sb strings.Builder
	sb.WriteString(" ")
	for _, f := range files {
		sb.WriteString(" " + f.String())
	}
	sb.WriteString("\n")
	for _, r := range ranks {
		sb.WriteString(r.String())
		for _, f := range files {
			piece := board.Piece(chess.NewSquare(f, r))
			if piece == chess.NoPiece {
				sb.WriteString(" -")
			} else {
				sb.WriteString(" " + piece.String())
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
