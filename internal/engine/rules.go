package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked by some
// opposing piece. A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked reports whether a piece of colour by attacks target.
// Pawns attack both forward diagonals whether or not target is occupied, so
// for an empty target this is not the same as by having a move to it.
// Non-pawn pieces are checked through PieceMoves, which never lands on a
// friendly piece: target must be empty or hold a piece of the other side.
func IsSquareAttacked(board *chess.Board, target chess.Position, by chess.Colour) bool {
	for _, from := range board.PositionsOf(by) {
		piece, _ := board.Get(from)
		if piece.Kind == chess.Pawn {
			// Pawns capture diagonally whether or not the square is occupied.
			if target.Row()-from.Row() == by.Forward() && abs(target.Column()-from.Column()) == 1 {
				return true
			}
			continue
		}
		for _, m := range PieceMoves(board, from) {
			if m.To == target {
				return true
			}
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// LegalMoves returns the pseudo-legal moves of the piece on from that do not
// leave its own king attacked. The second result is false if from is empty.
func LegalMoves(board *chess.Board, from chess.Position) ([]chess.Move, bool) {
	piece, ok := board.Get(from)
	if !ok {
		return nil, false
	}

	candidates := PieceMoves(board, from)
	legal := make([]chess.Move, 0, len(candidates))
	scratch := chess.NewBoard()
	for _, m := range candidates {
		if keepsKingSafe(board, scratch, m, piece.Colour) {
			legal = append(legal, m)
		}
	}
	return legal, true
}

// AllLegalMoves returns every legal move available to colour.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var all []chess.Move
	for _, from := range board.PositionsOf(colour) {
		moves, _ := LegalMoves(board, from)
		all = append(all, moves...)
	}
	return all
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	scratch := chess.NewBoard()
	for _, from := range board.PositionsOf(colour) {
		for _, m := range PieceMoves(board, from) {
			if keepsKingSafe(board, scratch, m, colour) {
				return true
			}
		}
	}
	return false
}

// keepsKingSafe plays m on scratch, a copy of board, and reports whether
// colour's king is safe afterwards. board itself is never modified.
func keepsKingSafe(board, scratch *chess.Board, m chess.Move, colour chess.Colour) bool {
	scratch.CloneFrom(board)
	applyMove(scratch, m)
	return !IsInCheck(scratch, colour)
}

// applyMove moves the piece on m.From to m.To, replacing any captured piece
// and substituting the promotion kind when one is given. It performs no
// validation.
func applyMove(board *chess.Board, m chess.Move) {
	piece, _ := board.Get(m.From)
	if m.IsPromotion() {
		piece.Kind = m.Promotion
	}
	board.Remove(m.From)
	board.Set(m.To, piece)
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
