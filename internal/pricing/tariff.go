package pricing

import (
	"fmt"
	"time"
)

// Input bounds for Tariff.Price; within them base*percent fits in an int64.
const (
	MaxPercent   = 1000
	MaxBaseCents = 100_000_000_000
)

// Tariff applies a peak or off-peak multiplier to a base price depending on
// the hour of day. Both bounds of the peak window are inclusive.
type Tariff struct {
	PeakStartHour  int
	PeakEndHour    int
	PeakPercent    int64
	OffPeakPercent int64
}

// DefaultTariff is +20% from 08:00 through 18:59 and -10% otherwise.
func DefaultTariff() Tariff {
	return Tariff{
		PeakStartHour:  8,
		PeakEndHour:    18,
		PeakPercent:    120,
		OffPeakPercent: 90,
	}
}

// Validate rejects hours outside 0..23, inverted windows and percents outside 1..MaxPercent.
func (t Tariff) Validate() error {
	if t.PeakStartHour < 0 || t.PeakStartHour > 23 {
		return fmt.Errorf("peak_start_hour must be within 0..23 (got %d)", t.PeakStartHour)
	}
	if t.PeakEndHour < 0 || t.PeakEndHour > 23 {
		return fmt.Errorf("peak_end_hour must be within 0..23 (got %d)", t.PeakEndHour)
	}
	if t.PeakStartHour > t.PeakEndHour {
		return fmt.Errorf("peak_start_hour %d is after peak_end_hour %d", t.PeakStartHour, t.PeakEndHour)
	}
	if t.PeakPercent <= 0 || t.OffPeakPercent <= 0 || t.PeakPercent > MaxPercent || t.OffPeakPercent > MaxPercent {
		return fmt.Errorf("peak_percent and off_peak_percent must be within 1..%d", MaxPercent)
	}
	return nil
}

// IsPeak reports whether hour falls inside the peak window.
func (t Tariff) IsPeak(hour int) bool {
	return hour >= t.PeakStartHour && hour <= t.PeakEndHour
}

// Price returns the dynamic price in cents of base at the given instant,
// rounded half-up to the nearest cent.
func (t Tariff) Price(base int64, at time.Time) int64 {
	pct := t.OffPeakPercent
	if t.IsPeak(at.Hour()) {
		pct = t.PeakPercent
	}
	return (base*pct + 50) / 100
}

// FormatCents renders cents as "$6.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
