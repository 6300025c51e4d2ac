package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/bingo-backend/internal/apperror"
	"github.com/rocketscienceinc/bingo-backend/internal/entity"
)

var (
	errInvalidNumber = errors.New("invalid number")
	errUsage         = errors.New("usage")
	errWrite         = errors.New("failed to write output")
)

const helpText = `Commands:
  new [N]         start a new N x N card
  regen           deal a new card for this game
  mark <row> <col> mark a cell, counting from 1
  call <number>   mark the cell holding number
  show            print the card
  help            print this help
  quit            leave the game
`

func (that *Server) handleNewGame(ctx context.Context, args []string) error {
	size := that.defaultSize
	if len(args) > 0 {
		n, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		size = n
	}

	session, err := that.uGame.Start(ctx, size)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	return that.render(session)
}

func (that *Server) handleRegenerate(ctx context.Context, _ []string) error {
	session, err := that.uGame.Regenerate(ctx)
	if err != nil {
		return fmt.Errorf("failed to regenerate card: %w", err)
	}

	return that.render(session)
}

func (that *Server) handleMark(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: mark <row> <col>", errUsage)
	}

	row, err := parseNumber(args[0])
	if err != nil {
		return err
	}

	col, err := parseNumber(args[1])
	if err != nil {
		return err
	}

	session, err := that.uGame.Mark(ctx, row-1, col-1)
	if err != nil {
		return fmt.Errorf("failed to mark cell: %w", err)
	}

	return that.afterMark(session)
}

func (that *Server) handleCall(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: call <number>", errUsage)
	}

	value, err := parseNumber(args[0])
	if err != nil {
		return err
	}

	session, err := that.uGame.MarkNumber(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to mark number: %w", err)
	}

	return that.afterMark(session)
}

func (that *Server) handleShow(_ context.Context, _ []string) error {
	session := that.uGame.Current()
	if session == nil {
		return apperror.ErrNoActiveSession
	}

	return that.render(session)
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	return that.printf("%s", helpText)
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	if err := that.printf("Bye!\n"); err != nil {
		return err
	}

	return errQuit
}

// afterMark - renders the card; once it has won the screen goes back to the dimension prompt.
func (that *Server) afterMark(session *entity.Session) error {
	if err := that.render(session); err != nil {
		return err
	}

	if session.IsFinished() {
		that.promptDimension()
	}

	return nil
}

func (that *Server) render(session *entity.Session) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Bingo - UID: %s\n", session.ID)
	for _, row := range session.Grid.Cells {
		for _, cell := range row {
			if cell.Marked {
				fmt.Fprintf(&b, "[%3d]", cell.Value)
			} else {
				fmt.Fprintf(&b, " %3d ", cell.Value)
			}
		}
		b.WriteString("\n")
	}

	return that.printf("%s", b.String())
}

// describe - turns a rejected command into a message for the player.
func (that *Server) describe(err error) string {
	session := that.uGame.Current()

	switch {
	case errors.Is(err, apperror.ErrInvalidDimension):
		return fmt.Sprintf("The dimension must be between 1 and %d.", that.uGame.MaxSize())
	case errors.Is(err, apperror.ErrIndexOutOfRange) && session != nil:
		return fmt.Sprintf("Row and column must be between 1 and %d.", session.Size)
	case errors.Is(err, apperror.ErrNumberNotOnCard):
		return "That number is not on the card."
	case errors.Is(err, apperror.ErrGameFinished):
		return "This card already won, start a new game with: new <N>"
	case errors.Is(err, apperror.ErrNoActiveSession):
		return "No game in progress, start one with: new <N>"
	case errors.Is(err, errInvalidNumber):
		return "Please enter a valid number."
	case errors.Is(err, errUsage):
		return "Usage" + strings.TrimPrefix(err.Error(), errUsage.Error())
	default:
		return err.Error()
	}
}

func (that *Server) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	return nil
}

func isWriteError(err error) bool {
	return errors.Is(err, errWrite)
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, s)
	}

	return n, nil
}
