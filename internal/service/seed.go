package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/EpicMandM/parking-lot/internal/models"
	"github.com/EpicMandM/parking-lot/internal/pricing"
	"github.com/EpicMandM/parking-lot/internal/store"
)

// SeedConfig is the startup catalog: who may log in, which spaces exist and
// how they are priced.
// Source: built in (DefaultSeed) or a TOML file (LoadSeed)
type SeedConfig struct {
	Users   []string      `toml:"users"`
	Pricing PricingConfig `toml:"pricing"`
	Spaces  []SpaceSeed   `toml:"spaces"`
}

// PricingConfig overrides the default tariff. Unset keys keep their defaults.
type PricingConfig struct {
	PeakStartHour  *int   `toml:"peak_start_hour"`
	PeakEndHour    *int   `toml:"peak_end_hour"`
	PeakPercent    *int64 `toml:"peak_percent"`
	OffPeakPercent *int64 `toml:"off_peak_percent"`
}

type SpaceSeed struct {
	ID        string  `toml:"id"`
	BasePrice float64 `toml:"base_price"`
	VIP       bool    `toml:"vip"`
}

// maxBasePrice is pricing.MaxBaseCents in dollars.
const maxBasePrice = float64(pricing.MaxBaseCents) / 100

// DefaultSeed returns the six demo spaces and two demo users.
func DefaultSeed() *SeedConfig {
	return &SeedConfig{
		Users: []string{"user1", "user2"},
		Spaces: []SpaceSeed{
			{ID: "A1", BasePrice: 5.0},
			{ID: "A2", BasePrice: 7.0, VIP: true},
			{ID: "A3", BasePrice: 6.0},
			{ID: "B1", BasePrice: 4.0},
			{ID: "B2", BasePrice: 8.0, VIP: true},
			{ID: "B3", BasePrice: 6.5},
		},
	}
}

// LoadSeed loads the catalog from a TOML file. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
func LoadSeed(path string) (*SeedConfig, error) {
	var cfg SeedConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("failed to load seed config: unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed config %s: %w", path, err)
	}
	return &cfg, nil
}

// Normalize upper-cases space IDs and lower-cases usernames, trimming both.
func (c *SeedConfig) Normalize() {
	for i := range c.Users {
		c.Users[i] = normalizeUsername(c.Users[i])
	}
	for i := range c.Spaces {
		c.Spaces[i].ID = NormalizeSpaceID(c.Spaces[i].ID)
	}
}

// Validate expects a normalized config.
func (c *SeedConfig) Validate() error {
	var errs []error

	if len(c.Users) == 0 {
		errs = append(errs, errors.New("at least one user is required"))
	}
	seenUsers := make(map[string]bool, len(c.Users))
	for i, u := range c.Users {
		switch {
		case u == "":
			errs = append(errs, fmt.Errorf("users[%d]: username is empty", i))
		case seenUsers[u]:
			errs = append(errs, fmt.Errorf("users[%d]: duplicate username %q", i, u))
		}
		seenUsers[u] = true
	}

	if len(c.Spaces) == 0 {
		errs = append(errs, errors.New("at least one space is required"))
	}
	seenSpaces := make(map[string]bool, len(c.Spaces))
	for i, s := range c.Spaces {
		switch {
		case s.ID == "":
			errs = append(errs, fmt.Errorf("spaces[%d]: id is empty", i))
		case seenSpaces[s.ID]:
			errs = append(errs, fmt.Errorf("spaces[%d]: duplicate id %q", i, s.ID))
		}
		seenSpaces[s.ID] = true
		switch {
		case s.BasePrice < 0 || math.IsNaN(s.BasePrice) || math.IsInf(s.BasePrice, 0):
			errs = append(errs, fmt.Errorf("spaces[%d]: base_price must be a non-negative number", i))
		case s.BasePrice > maxBasePrice:
			errs = append(errs, fmt.Errorf("spaces[%d]: base_price must be at most %.0f", i, maxBasePrice))
		}
	}

	if err := c.Tariff().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("pricing: %w", err))
	}
	return errors.Join(errs...)
}

// Tariff merges the configured overrides onto the default tariff.
func (c *SeedConfig) Tariff() pricing.Tariff {
	t := pricing.DefaultTariff()
	if c.Pricing.PeakStartHour != nil {
		t.PeakStartHour = *c.Pricing.PeakStartHour
	}
	if c.Pricing.PeakEndHour != nil {
		t.PeakEndHour = *c.Pricing.PeakEndHour
	}
	if c.Pricing.PeakPercent != nil {
		t.PeakPercent = *c.Pricing.PeakPercent
	}
	if c.Pricing.OffPeakPercent != nil {
		t.OffPeakPercent = *c.Pricing.OffPeakPercent
	}
	return t
}

// Apply writes every seeded space (unreserved) and user (no holdings) to st.
func (c *SeedConfig) Apply(st store.Store) error {
	for _, s := range c.Spaces {
		space := &models.Space{
			ID:        s.ID,
			BasePrice: toCents(s.BasePrice),
			VIP:       s.VIP,
		}
		if err := st.SaveSpace(space); err != nil {
			return fmt.Errorf("seed space %s: %w", s.ID, err)
		}
	}
	for _, u := range c.Users {
		if err := st.SaveUser(models.NewUser(u)); err != nil {
			return fmt.Errorf("seed user %s: %w", u, err)
		}
	}
	return nil
}

// NormalizeSpaceID is the caller-side normalization for space lookups.
func NormalizeSpaceID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func normalizeUsername(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
