package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/bingo-backend/internal/entity"
)

var errQuit = errors.New("quit")

type uGame interface {
	Start(ctx context.Context, size int) (*entity.Session, error)
	Regenerate(ctx context.Context) (*entity.Session, error)
	Mark(ctx context.Context, row, col int) (*entity.Session, error)
	MarkNumber(ctx context.Context, value int) (*entity.Session, error)
	Current() *entity.Session
	MaxSize() int
}

type handler func(ctx context.Context, args []string) error

// Server is the terminal front end: it reads one command per line and renders the card after each change.
type Server struct {
	logger *slog.Logger
	uGame  uGame
	out    io.Writer

	defaultSize int
	handlers    map[string]handler
}

func New(logger *slog.Logger, uGame uGame, out io.Writer, defaultSize int) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		out:    out,

		defaultSize: defaultSize,
		handlers:    make(map[string]handler),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["regen"] = server.handleRegenerate
	server.handlers["mark"] = server.handleMark
	server.handlers["call"] = server.handleCall
	server.handlers["show"] = server.handleShow
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - serves commands from in until quit, EOF or ctx cancellation.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	that.printf("Welcome to Bingo!\n")
	that.promptDimension()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.readError(readErr)
			}

			if err := that.handleLine(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}

				return err
			}
		}
	}
}

// handleLine - dispatches a single command; user mistakes are reported and never end the loop.
func (that *Server) handleLine(ctx context.Context, line string) error {
	log := that.logger.With("method", "handleLine")

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]

	// a bare number on the dimension prompt starts a game
	if _, err := parseNumber(name); err == nil && !that.inGame() {
		name, args = "new", fields
	}

	cmd, ok := that.handlers[name]
	if !ok {
		that.printf("Unknown command %q, type help for the list of commands.\n", name)
		return nil
	}

	err := cmd(ctx, args)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errQuit):
		return err
	case isWriteError(err):
		return err
	default:
		log.DebugContext(ctx, "command rejected", "command", name, "error", err)
		that.printf("%s\n", that.describe(err))
		return nil
	}
}

func (that *Server) readError(readErr chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	return nil
}

func (that *Server) inGame() bool {
	session := that.uGame.Current()
	return session != nil && session.IsOngoing()
}

func (that *Server) promptDimension() {
	that.printf("Enter the grid dimension (1-%d) or new <N>, default %d:\n", that.uGame.MaxSize(), that.defaultSize)
}
