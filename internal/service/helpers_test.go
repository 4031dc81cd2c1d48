package service

import (
	"bytes"
	"testing"

	"github.com/EpicMandM/parking-lot/internal/logger"
	"github.com/EpicMandM/parking-lot/internal/pricing"
	"github.com/EpicMandM/parking-lot/internal/store"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store     *store.MemoryStore
	registry  *SpaceRegistry
	directory *UserDirectory
	engine    *ReservationEngine
	logs      *bytes.Buffer
}

// newFixture seeds the default catalog with the clock pinned to hour.
func newFixture(t *testing.T, hour int) *fixture {
	t.Helper()
	st := store.NewMemoryStore()
	seed := DefaultSeed()
	require.NoError(t, seed.Apply(st))

	logs := &bytes.Buffer{}
	log := logger.NewWithWriter(logs)
	registry := NewSpaceRegistry(st, seed.Tariff(), pricing.AtHour(hour))
	directory := NewUserDirectory(st, log)
	return &fixture{
		store:     st,
		registry:  registry,
		directory: directory,
		engine:    NewReservationEngine(st, registry, directory, log),
		logs:      logs,
	}
}

func (f *fixture) login(t *testing.T, name string) *Session {
	t.Helper()
	s, err := f.directory.Login(name)
	require.NoError(t, err)
	return s
}
