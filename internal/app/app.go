package app

import (
	"context"
	"fmt"
	"io"

	"github.com/EpicMandM/parking-lot/internal/config"
	"github.com/EpicMandM/parking-lot/internal/handler"
	"github.com/EpicMandM/parking-lot/internal/logger"
	"github.com/EpicMandM/parking-lot/internal/pricing"
	"github.com/EpicMandM/parking-lot/internal/service"
	"github.com/EpicMandM/parking-lot/internal/shell"
	"github.com/EpicMandM/parking-lot/internal/store"
)

type App struct {
	config *config.Config
	logger *logger.Logger
	output io.Writer
	clock  pricing.Clock

	panel *handler.PanelHandler
}

// Option customizes an App before Initialize.
type Option func(*App)

// WithClock replaces the wall clock used for pricing.
func WithClock(clock pricing.Clock) Option {
	return func(a *App) {
		a.clock = clock
	}
}

func New(cfg *config.Config, log *logger.Logger, output io.Writer, opts ...Option) *App {
	if log == nil {
		log = logger.Discard()
	}
	if output == nil {
		output = io.Discard
	}
	a := &App{
		config: cfg,
		logger: log,
		output: output,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Initialize loads the seed catalog into a fresh in-memory store and wires
// the registry, directory, engine and panel over it.
func (a *App) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	seed, err := a.loadSeed()
	if err != nil {
		return err
	}

	if a.clock == nil {
		loc, err := a.config.Location()
		if err != nil {
			return err
		}
		a.clock = pricing.SystemClock{Location: loc}
	}

	st := store.NewMemoryStore()
	if err := seed.Apply(st); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	registry := service.NewSpaceRegistry(st, seed.Tariff(), a.clock)
	directory := service.NewUserDirectory(st, a.logger)
	engine := service.NewReservationEngine(st, registry, directory, a.logger)
	a.panel = handler.NewPanelHandler(registry, directory, engine, a.logger)

	a.logger.Info("Parking lot ready", logger.Action("startup"), logger.Status("ready"),
		logger.Count(len(seed.Spaces)), logger.F("USERS", len(seed.Users)))
	return nil
}

func (a *App) loadSeed() (*service.SeedConfig, error) {
	if a.config.SeedPath == "" {
		a.logger.Info("Using built-in seed", logger.Action("startup"))
		return service.DefaultSeed(), nil
	}
	seed, err := service.LoadSeed(a.config.SeedPath)
	if err != nil {
		a.logger.Error("Failed to load seed", logger.Error(err), logger.Path(a.config.SeedPath))
		return nil, err
	}
	a.logger.Info("Seed loaded", logger.Action("startup"), logger.Path(a.config.SeedPath))
	return seed, nil
}

// Run starts the interactive shell reading from input.
func (a *App) Run(ctx context.Context, input io.Reader) error {
	if a.panel == nil {
		return fmt.Errorf("app not initialized")
	}
	return shell.New(a.panel, input, a.output, a.logger).Run(ctx)
}

// PrintSpaces writes the current listing once.
func (a *App) PrintSpaces() error {
	if a.panel == nil {
		return fmt.Errorf("app not initialized")
	}
	_, err := io.WriteString(a.output, a.panel.Spaces())
	return err
}
