package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/EpicMandM/parking-lot/internal/models"
	"github.com/EpicMandM/parking-lot/internal/pricing"
	"github.com/EpicMandM/parking-lot/internal/store"
)

// SpaceView is a space as shown to the operator: its state plus the price
// at the instant the view was taken.
type SpaceView struct {
	ID        string
	VIP       bool
	Reserved  bool
	HeldBy    string
	BasePrice int64
	Price     int64
}

func (v SpaceView) Tag() string {
	return models.Space{VIP: v.VIP}.Tag()
}

func (v SpaceView) Status() string {
	return models.Space{Reserved: v.Reserved}.Status()
}

// SpaceRegistry is the single source of truth for which spaces exist and
// whether they are reserved.
type SpaceRegistry struct {
	store  store.Store
	tariff pricing.Tariff
	clock  pricing.Clock
}

func NewSpaceRegistry(st store.Store, tariff pricing.Tariff, clock pricing.Clock) *SpaceRegistry {
	if clock == nil {
		clock = pricing.SystemClock{}
	}
	return &SpaceRegistry{
		store:  st,
		tariff: tariff,
		clock:  clock,
	}
}

// Now reads the registry clock.
func (r *SpaceRegistry) Now() time.Time {
	return r.clock.Now()
}

// List returns every space in seed order, priced at the current time.
func (r *SpaceRegistry) List() ([]SpaceView, error) {
	return r.ListAt(r.clock.Now())
}

// ListAt returns every space in seed order, priced at the given time.
func (r *SpaceRegistry) ListAt(now time.Time) ([]SpaceView, error) {
	spaces, err := r.store.ListSpaces()
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}
	views := make([]SpaceView, 0, len(spaces))
	for _, s := range spaces {
		views = append(views, r.View(s, now))
	}
	return views, nil
}

// Lookup finds a space by exact ID. Callers normalize with NormalizeSpaceID.
func (r *SpaceRegistry) Lookup(id string) (*models.Space, error) {
	space, err := r.store.GetSpace(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSpaceNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return space, nil
}

// View prices a space at now.
func (r *SpaceRegistry) View(s *models.Space, now time.Time) SpaceView {
	return SpaceView{
		ID:        s.ID,
		VIP:       s.VIP,
		Reserved:  s.Reserved,
		HeldBy:    s.HeldBy,
		BasePrice: s.BasePrice,
		Price:     r.tariff.Price(s.BasePrice, now),
	}
}

func (r *SpaceRegistry) save(s *models.Space) error {
	return r.store.SaveSpace(s)
}
