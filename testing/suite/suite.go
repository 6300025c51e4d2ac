package suite

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/bingo-backend/internal/bingo"
	"github.com/rocketscienceinc/bingo-backend/internal/config"
)

const maxWaitDuration = 10 * time.Second

const (
	seedHi = 42
	seedLo = 1024
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Config    *config.Config
	Generator *bingo.Generator
}

// New - builds the shared test fixtures: a logger, the default config and a deterministically seeded generator.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	conf := &config.Config{
		LogLevel:    "info",
		DefaultSize: 5,
		Pool:        config.Pool{Min: 1, Max: 100},
	}

	generator, err := bingo.NewGenerator(conf.Pool, rand.New(rand.NewPCG(seedHi, seedLo)))
	if err != nil {
		t.Fatalf("could not create generator: %v", err)
	}

	return ctx, &Suite{
		T:         t,
		Logger:    logger,
		Config:    conf,
		Generator: generator,
	}
}
