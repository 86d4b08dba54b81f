// Package apperrors defines the sentinel errors the engine returns across
// its package boundaries so callers can distinguish failure kinds with
// errors.Is instead of string matching.
package apperrors

import "errors"

var (
	// ErrInvalidPosition is returned by the loader when an InitialState
	// describes an inconsistent or unsupported position.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrIllegalMove is returned when a caller-issued move is not a member
	// of the current legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoLegalMoves names a search request on a position that has no
	// legal moves (checkmate or stalemate). No function in this module
	// returns it: the searcher has no error return, and such a search
	// yields an empty principal variation with a mate or draw score.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrLeaderAlreadyCaptured names a search request on a position whose
	// side to move no longer has a leader piece. No function in this module
	// returns it; the searcher has no error return.
	ErrLeaderAlreadyCaptured = errors.New("leader already captured")

	// ErrTimeout names an expired search deadline. No function in this
	// module returns it: the searcher signals an expired deadline
	// internally with ValueNA and its stop flag, and Run returns the last
	// completed iteration as its result.
	ErrTimeout = errors.New("search timeout")
)
