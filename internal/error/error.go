package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrAttackFailed      = "attack operation failed"
	ConstErrOperationRejected = "operation rejected"
	ConstErrInvalidPayload    = "invalid payload"
)

// Kinds of board engine failures. Attack kinds travel back to the
// attacker inside a RevealResult instead of aborting the exchange.
const (
	BoardErrInvalidSize uint8 = iota
	BoardErrInvalidLength
	BoardErrOutOfBounds
	BoardErrOverlap
	BoardErrAdjacency
	BoardErrAlreadyAttacked
	BoardErrShipNotFound
	BoardErrInvalidAxis
	BoardErrTooManyShips
)

type BoardErr struct {
	kind uint8
	desc string
}

func (b *BoardErr) Error() string {
	return b.desc
}

func newBoardErr(kind uint8, format string, a ...any) error {
	return &BoardErr{kind: kind, desc: fmt.Sprintf(format, a...)}
}

// PreconditionErr rejects a whole operation or message. Whoever gets one
// back must drop the state it was working on.
type PreconditionErr struct {
	desc string
}

func (p *PreconditionErr) Error() string {
	return p.desc
}

func newPreconditionErr(format string, a ...any) error {
	return &PreconditionErr{desc: fmt.Sprintf(format, a...)}
}

func IsPrecondition(err error) bool {
	var p *PreconditionErr
	return errors.As(err, &p)
}

// Returns the board error kind and true if err is a board error.
func BoardErrKind(err error) (uint8, bool) {
	var b *BoardErr
	if errors.As(err, &b) {
		return b.kind, true
	}
	return 0, false
}

func ErrInvalidBoardSize(size uint8) error {
	return newBoardErr(BoardErrInvalidSize, "invalid board size: %d", size)
}

func ErrInvalidShipLength() error {
	return newBoardErr(BoardErrInvalidLength, "ship length must be greater than zero")
}

func ErrInvalidAxis(axis uint8) error {
	return newBoardErr(BoardErrInvalidAxis, "invalid ship axis: %d", axis)
}

func ErrTooManyShips(count, max int) error {
	return newBoardErr(BoardErrTooManyShips, "too many ships: %d, at most %d allowed", count, max)
}

func ErrShipStartOutOfBounds(row, col uint8) error {
	return newBoardErr(BoardErrOutOfBounds, "ship start out of bounds\trow: %d\tcol: %d", row, col)
}

func ErrShipOutOfBounds(row, col int) error {
	return newBoardErr(BoardErrOutOfBounds, "ship out of bounds\trow: %d\tcol: %d", row, col)
}

func ErrShipsOverlap(row, col uint8) error {
	return newBoardErr(BoardErrOverlap, "ships overlap\trow: %d\tcol: %d", row, col)
}

func ErrShipsTouch(row, col uint8) error {
	return newBoardErr(BoardErrAdjacency, "ships must not touch (including diagonals)\trow: %d\tcol: %d", row, col)
}

func ErrAttackOutOfBounds(row, col uint8) error {
	return newBoardErr(BoardErrOutOfBounds, "attack out of bounds\trow: %d\tcol: %d", row, col)
}

func ErrCellAlreadyAttacked(row, col uint8) error {
	return newBoardErr(BoardErrAlreadyAttacked, "cell already attacked\trow: %d\tcol: %d", row, col)
}

func ErrShipNotFound(shipId uint8) error {
	return newBoardErr(BoardErrShipNotFound, "ship with this id does not exist, id: %d", shipId)
}

func ErrCoordOutOfBounds(row, col uint8) error {
	return newBoardErr(BoardErrOutOfBounds, "coordinates out of bounds\trow: %d\tcol: %d", row, col)
}

func ErrInvalidBoard(err error) error {
	return newPreconditionErr("invalid board: %s", err)
}

func ErrRoomNotFound() error {
	return newPreconditionErr("room not found")
}

func ErrRoomNotActive(roomId string) error {
	return newPreconditionErr("room is not active, id: %s", roomId)
}

func ErrRoomFull(roomId string) error {
	return newPreconditionErr("room is full, id: %s", roomId)
}

func ErrNotHost(address string) error {
	return newPreconditionErr("only the host can do this, address: %s", address)
}

func ErrPlayerNotInRoom(address string) error {
	return newPreconditionErr("player is not in the room, address: %s", address)
}

func ErrPlayerAlreadyInRoom(address string) error {
	return newPreconditionErr("player already in the room, address: %s", address)
}

func ErrNeedTwoPlayers(count int) error {
	return newPreconditionErr("need 2 players to start, got: %d", count)
}

func ErrBoardsNotSubmitted() error {
	return newPreconditionErr("both boards must be submitted")
}

func ErrBoardNotSubmitted() error {
	return newPreconditionErr("board not submitted")
}

func ErrBoardsLocked(gameState string) error {
	return newPreconditionErr("boards can not be submitted in game state: %s", gameState)
}

func ErrGameNotStarted() error {
	return newPreconditionErr("game not started")
}

func ErrGameAlreadyStarted(gameState string) error {
	return newPreconditionErr("game can not be started from game state: %s", gameState)
}

func ErrNotYourTurn(address string) error {
	return newPreconditionErr("not your turn, address: %s", address)
}

func ErrPendingAttack(row, col uint8) error {
	return newPreconditionErr("pending attack not resolved\trow: %d\tcol: %d", row, col)
}

func ErrCellAlreadyRevealed(row, col uint8) error {
	return newPreconditionErr("cell already revealed\trow: %d\tcol: %d", row, col)
}

func ErrEnemyNotFound() error {
	return newPreconditionErr("enemy not found in room")
}

func ErrNotFriends(address string) error {
	return newPreconditionErr("not friends, address: %s", address)
}

func ErrInvalidAddress(address string) error {
	return newPreconditionErr("invalid peer address: %q", address)
}

func ErrSelfAddress(address string) error {
	return newPreconditionErr("peer can not target itself, address: %s", address)
}

func ErrNilPayload() error {
	return fmt.Errorf("the payload is nil or malformed")
}

func ErrInvalidCode(code uint8) error {
	return fmt.Errorf("invalid code in the incoming payload: %d", code)
}

func ErrSessionNotFound(address string) error {
	return fmt.Errorf("session for this address does not exist, address: %s", address)
}

var errPeerStopped = errors.New("peer is not running")

// Always the same value, so errors.Is can match it.
func ErrPeerStopped() error {
	return errPeerStopped
}
