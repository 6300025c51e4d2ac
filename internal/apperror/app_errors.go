package apperror

import "errors"

var (
	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrIndexOutOfRange  = errors.New("cell index out of range")
	ErrInvalidPool      = errors.New("invalid number pool")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoActiveSession  = errors.New("no active session")
	ErrNumberNotOnCard  = errors.New("number is not on the card")
)
