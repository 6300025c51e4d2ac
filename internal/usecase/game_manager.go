package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/bingo-backend/internal/apperror"
	"github.com/rocketscienceinc/bingo-backend/internal/entity"
	"github.com/rocketscienceinc/bingo-backend/internal/notifier"
	"github.com/rocketscienceinc/bingo-backend/internal/pkg"
)

type gridGenerator interface {
	Generate(size int) (*entity.Grid, error)
	MaxSize() int
}

type winNotifier interface {
	Notify(ctx context.Context, announcement notifier.Announcement) error
}

// GameManager owns the single session in play and sequences the engine calls for it.
// It is not safe for concurrent use.
type GameManager struct {
	logger    *slog.Logger
	generator gridGenerator
	notifier  winNotifier

	session *entity.Session
}

func NewGameManager(logger *slog.Logger, generator gridGenerator, announcer winNotifier) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		generator: generator,
		notifier:  announcer,
	}
}

// Start - begins a new session with a fresh id and card.
func (that *GameManager) Start(ctx context.Context, size int) (*entity.Session, error) {
	grid, err := that.generator.Generate(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate card: %w", err)
	}

	that.session = entity.NewSession(pkg.GenerateSessionID(), grid)

	that.logger.InfoContext(ctx, "session started", "session", that.session.ID, "size", size)

	return that.session, nil
}

// Regenerate - replaces the card of the current session, keeping its id and size.
func (that *GameManager) Regenerate(ctx context.Context) (*entity.Session, error) {
	if that.session == nil {
		return nil, apperror.ErrNoActiveSession
	}

	grid, err := that.generator.Generate(that.session.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to regenerate card: %w", err)
	}

	that.session.ReplaceGrid(grid)

	that.logger.DebugContext(ctx, "card regenerated", "session", that.session.ID)

	return that.session, nil
}

// Mark - marks a cell and checks the card; a win finishes the session and is announced once.
func (that *GameManager) Mark(ctx context.Context, row, col int) (*entity.Session, error) {
	if that.session == nil {
		return nil, apperror.ErrNoActiveSession
	}

	if err := that.session.ConfirmOngoingState(); err != nil {
		return that.session, err
	}

	if err := that.session.Grid.Mark(row, col); err != nil {
		return that.session, fmt.Errorf("failed to mark cell: %w", err)
	}

	that.session.UpdateSessionState()

	if that.session.IsFinished() {
		that.announceWin(ctx)
	}

	return that.session, nil
}

// MarkNumber - marks the cell holding value.
func (that *GameManager) MarkNumber(ctx context.Context, value int) (*entity.Session, error) {
	if that.session == nil {
		return nil, apperror.ErrNoActiveSession
	}

	row, col, ok := that.session.Grid.Find(value)
	if !ok {
		return that.session, fmt.Errorf("%w: %d", apperror.ErrNumberNotOnCard, value)
	}

	return that.Mark(ctx, row, col)
}

// Current - the session in play, nil before the first Start.
func (that *GameManager) Current() *entity.Session {
	return that.session
}

func (that *GameManager) MaxSize() int {
	return that.generator.MaxSize()
}

func (that *GameManager) announceWin(ctx context.Context) {
	log := that.logger.With("method", "announceWin")

	log.InfoContext(ctx, "card won", "session", that.session.ID, "marked", that.session.Grid.MarkedCount())

	// the session is finished either way, a failed announcement is only logged
	if err := that.notifier.Notify(ctx, notifier.NewWinAnnouncement(that.session.ID)); err != nil {
		log.ErrorContext(ctx, "failed to announce win", "error", err)
	}
}
