package notifier

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errSpeakerOffline = errors.New("speaker offline")

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, announcement Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errSpeakerOffline
}

func TestConsole_Notify(t *testing.T) {
	t.Run("Writes the win dialog", func(t *testing.T) {
		var out bytes.Buffer
		console := NewConsole(&out)

		err := console.Notify(context.Background(), NewWinAnnouncement("Ab12c"))

		require.NoError(t, err)
		assert.Contains(t, out.String(), WinTitle)
		assert.Contains(t, out.String(), WinMessage)
	})

	t.Run("Returns writer error", func(t *testing.T) {
		console := NewConsole(failingWriter{})

		err := console.Notify(context.Background(), NewWinAnnouncement("Ab12c"))

		assert.ErrorIs(t, err, errSpeakerOffline)
	})
}

func TestLog_Notify(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))

	err := NewLog(logger).Notify(context.Background(), NewWinAnnouncement("Ab12c"))

	require.NoError(t, err)
	assert.Contains(t, out.String(), `"session":"Ab12c"`)
	assert.Contains(t, out.String(), "Has ganado el juego de Bingo")
}

func TestMulti_Notify(t *testing.T) {
	ctx := context.Background()
	announcement := NewWinAnnouncement("Ab12c")

	t.Run("Delivers to every notifier and joins errors", func(t *testing.T) {
		// Given: one failing and one working notifier
		failing := &mockNotifier{}
		failing.On("Notify", ctx, announcement).Return(errSpeakerOffline).Once()
		working := &mockNotifier{}
		working.On("Notify", ctx, announcement).Return(nil).Once()

		// When: notifying through Multi
		err := Multi{failing, working}.Notify(ctx, announcement)

		// Then: both were called and the failure is reported
		require.ErrorIs(t, err, errSpeakerOffline)
		failing.AssertExpectations(t)
		working.AssertExpectations(t)
	})

	t.Run("Returns nil when all succeed", func(t *testing.T) {
		working := &mockNotifier{}
		working.On("Notify", ctx, announcement).Return(nil).Once()

		assert.NoError(t, Multi{working}.Notify(ctx, announcement))
		working.AssertExpectations(t)
	})
}

func TestAnnouncement_Speech(t *testing.T) {
	t.Run("Win announcement reads the spoken line", func(t *testing.T) {
		assert.Equal(t, "¡Bingo! Has ganado el juego de Bingo", NewWinAnnouncement("x").Speech())
	})

	t.Run("Falls back to title and message", func(t *testing.T) {
		announcement := Announcement{Title: "Hola", Message: "mundo"}

		assert.Equal(t, "Hola mundo", announcement.Speech())
	})
}
