// Package engine provides chess move generation, move validation and game state.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// direction is a (row, column) step.
type direction [2]int

var (
	straightDirs = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs      = append(append([]direction{}, straightDirs...), diagonalDirs...)
	knightJumps  = []direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// PieceMoves returns the pseudo-legal moves of the piece on from: moves that
// follow the piece's geometry, stop at friendly pieces and capture only
// enemy pieces, without regard to the safety of the mover's king.
// It returns nil if from is empty.
func PieceMoves(board *chess.Board, from chess.Position) []chess.Move {
	piece, ok := board.Get(from)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case chess.King:
		return stepMoves(board, from, allDirs)
	case chess.Queen:
		return slideMoves(board, from, allDirs)
	case chess.Rook:
		return slideMoves(board, from, straightDirs)
	case chess.Bishop:
		return slideMoves(board, from, diagonalDirs)
	case chess.Knight:
		return stepMoves(board, from, knightJumps)
	case chess.Pawn:
		return pawnMoves(board, from, piece.Colour)
	}
	return nil
}

// stepMoves handles pieces that move a single fixed offset (king, knight).
func stepMoves(board *chess.Board, from chess.Position, offsets []direction) []chess.Move {
	moves := make([]chess.Move, 0, len(offsets))
	for _, d := range offsets {
		to := from.Translate(d[0], d[1])
		if board.InBounds(to) && board.IsCaptureLegal(from, to) {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// slideMoves handles pieces that slide until blocked (queen, rook, bishop).
// A ray includes the first enemy piece it meets and stops before a friendly one.
func slideMoves(board *chess.Board, from chess.Position, dirs []direction) []chess.Move {
	var moves []chess.Move
	for _, d := range dirs {
		to := from.Translate(d[0], d[1])
		for board.InBounds(to) && board.IsCaptureLegal(from, to) {
			moves = append(moves, chess.NewMove(from, to))
			if _, occupied := board.Get(to); occupied {
				break // Captured
			}
			to = to.Translate(d[0], d[1])
		}
	}
	return moves
}

// pawnMoves generates pushes, double pushes from the starting rank and
// diagonal captures, expanding moves onto the last rank into promotions.
func pawnMoves(board *chess.Board, from chess.Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := colour.Forward()

	one := from.Translate(dir, 0)
	if board.InBounds(one) && isEmpty(board, one) {
		moves = appendPawnMove(moves, from, one, colour)

		two := one.Translate(dir, 0)
		if from.Row() == colour.PawnRank() && board.InBounds(two) && isEmpty(board, two) {
			moves = appendPawnMove(moves, from, two, colour)
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Translate(dir, dc)
		if !board.InBounds(to) {
			continue
		}
		if target, ok := board.Get(to); ok && target.Colour != colour {
			moves = appendPawnMove(moves, from, to, colour)
		}
	}
	return moves
}

// appendPawnMove adds from->to, or one move per promotion kind when to is
// on the promotion rank.
func appendPawnMove(moves []chess.Move, from, to chess.Position, colour chess.Colour) []chess.Move {
	if to.Row() != colour.PromotionRank() {
		return append(moves, chess.NewMove(from, to))
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.NewPromotion(from, to, kind))
	}
	return moves
}

func isEmpty(board *chess.Board, pos chess.Position) bool {
	_, occupied := board.Get(pos)
	return !occupied
}
