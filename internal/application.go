package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/bingo-backend/internal/bingo"
	"github.com/rocketscienceinc/bingo-backend/internal/config"
	"github.com/rocketscienceinc/bingo-backend/internal/notifier"
	"github.com/rocketscienceinc/bingo-backend/internal/usecase"
	"github.com/rocketscienceinc/bingo-backend/transport/console"
)

var errSessionClosed = errors.New("console session closed")

// RunApp - runs the application on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the engine to a console reading in and writing out, until the console ends or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	generator, err := bingo.NewGenerator(conf.Pool, nil)
	if err != nil {
		return fmt.Errorf("could not create card generator: %w", err)
	}

	announcer := notifier.Multi{
		notifier.NewConsole(out),
		notifier.NewLog(logger),
	}
	gameManager := usecase.NewGameManager(logger, generator, announcer)
	consoleServer := console.New(logger, gameManager, out, conf.DefaultSize)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting console session", "max-size", generator.MaxSize())
		if consoleErr := consoleServer.Start(groupCtx, in); consoleErr != nil {
			return fmt.Errorf("console error: %w", consoleErr)
		}

		return errSessionClosed
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Application context canceled, shutting down")

		return nil
	})

	if err = group.Wait(); err != nil && !errors.Is(err, errSessionClosed) {
		return err
	}

	return nil
}
