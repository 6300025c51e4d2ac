package notifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const (
	WinTitle   = "¡BINGO!"
	WinMessage = "Has ganado el juego de Bingo"
	WinSpeech  = "¡Bingo! Has ganado el juego de Bingo"
)

// Announcement is what the presentation layer surfaces when a card wins.
type Announcement struct {
	SessionID string
	Title     string
	Message   string
	Spoken    string
}

func NewWinAnnouncement(sessionID string) Announcement {
	return Announcement{
		SessionID: sessionID,
		Title:     WinTitle,
		Message:   WinMessage,
		Spoken:    WinSpeech,
	}
}

// Speech is the line a speech engine would read aloud.
func (that Announcement) Speech() string {
	if that.Spoken != "" {
		return that.Spoken
	}

	return that.Title + " " + that.Message
}

type Notifier interface {
	Notify(ctx context.Context, announcement Announcement) error
}

// Console prints the win dialog to a writer.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (that *Console) Notify(_ context.Context, announcement Announcement) error {
	if _, err := fmt.Fprintf(that.out, "\n*** %s ***\n%s\n\n", announcement.Title, announcement.Message); err != nil {
		return fmt.Errorf("failed to write announcement: %w", err)
	}

	return nil
}

// Log records the announcement as a structured log line.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger.With("component", "notifier")}
}

func (that *Log) Notify(ctx context.Context, announcement Announcement) error {
	that.logger.InfoContext(ctx, "bingo", "session", announcement.SessionID, "speech", announcement.Speech())

	return nil
}

// Multi delivers an announcement to every notifier, even when some fail.
type Multi []Notifier

func (that Multi) Notify(ctx context.Context, announcement Announcement) error {
	var errs []error
	for _, n := range that {
		if err := n.Notify(ctx, announcement); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
