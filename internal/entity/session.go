package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/bingo-backend/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

var ErrUnknownSessionStatus = errors.New("unknown session status")

// Session is one play session: a display tag and the card currently in play.
type Session struct {
	ID     string `json:"id"`
	Size   int    `json:"size"`
	Grid   *Grid  `json:"grid"`
	Status string `json:"status"`
}

func NewSession(id string, grid *Grid) *Session {
	return &Session{
		ID:     id,
		Size:   grid.Size,
		Grid:   grid,
		Status: StatusOngoing,
	}
}

// ReplaceGrid swaps in a freshly generated card, keeping the session id.
func (that *Session) ReplaceGrid(grid *Grid) {
	that.Grid = grid
	that.Size = grid.Size
	that.Status = StatusOngoing
}

// UpdateSessionState finishes the session once the card holds a winning line.
func (that *Session) UpdateSessionState() {
	if that.Grid.CheckWin() {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

func (that *Session) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Session) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Session) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSessionStatus, that.Status)
	}
}
