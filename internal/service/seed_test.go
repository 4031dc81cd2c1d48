package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/EpicMandM/parking-lot/internal/pricing"
	"github.com/EpicMandM/parking-lot/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parking.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	require.NoError(t, seed.Validate())
	assert.Equal(t, []string{"user1", "user2"}, seed.Users)
	assert.Len(t, seed.Spaces, 6)
	assert.Equal(t, pricing.DefaultTariff(), seed.Tariff())
}

func TestDefaultSeed_Apply(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, DefaultSeed().Apply(st))

	spaces, err := st.ListSpaces()
	require.NoError(t, err)
	ids := make([]string, 0, len(spaces))
	for _, s := range spaces {
		ids = append(ids, s.ID)
		assert.False(t, s.Reserved, "%s must start unreserved", s.ID)
	}
	assert.Equal(t, []string{"A1", "A2", "A3", "B1", "B2", "B3"}, ids)

	b3, err := st.GetSpace("B3")
	require.NoError(t, err)
	assert.Equal(t, int64(650), b3.BasePrice)

	a2, err := st.GetSpace("A2")
	require.NoError(t, err)
	assert.True(t, a2.VIP)
}

func TestLoadSeed_ValidTOML(t *testing.T) {
	path := writeSeed(t, `
users = [" Alice ", "BOB"]

[pricing]
peak_start_hour = 7
peak_percent = 150

[[spaces]]
id = " c1 "
base_price = 3.25

[[spaces]]
id = "C2"
base_price = 10
vip = true
`)

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, seed.Users)
	require.Len(t, seed.Spaces, 2)
	assert.Equal(t, "C1", seed.Spaces[0].ID)
	assert.True(t, seed.Spaces[1].VIP)

	tariff := seed.Tariff()
	assert.Equal(t, 7, tariff.PeakStartHour)
	assert.Equal(t, 18, tariff.PeakEndHour, "unset keys keep defaults")
	assert.Equal(t, int64(150), tariff.PeakPercent)
	assert.Equal(t, int64(90), tariff.OffPeakPercent)

	st := store.NewMemoryStore()
	require.NoError(t, seed.Apply(st))
	c1, err := st.GetSpace("C1")
	require.NoError(t, err)
	assert.Equal(t, int64(325), c1.BasePrice)
}

func TestLoadSeed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid toml",
			content: "{{invalid",
			wantErr: "failed to load seed config",
		},
		{
			name:    "unknown key",
			content: "users = [\"a\"]\ncolour = \"red\"\n[[spaces]]\nid = \"A1\"\nbase_price = 1.0\n",
			wantErr: "unknown keys: colour",
		},
		{
			name:    "duplicate space after normalization",
			content: "users = [\"a\"]\n[[spaces]]\nid = \"a1\"\nbase_price = 1.0\n[[spaces]]\nid = \"A1\"\nbase_price = 2.0\n",
			wantErr: `duplicate id "A1"`,
		},
		{
			name:    "duplicate user after normalization",
			content: "users = [\"a\", \" A \"]\n[[spaces]]\nid = \"A1\"\nbase_price = 1.0\n",
			wantErr: `duplicate username "a"`,
		},
		{
			name:    "negative price",
			content: "users = [\"a\"]\n[[spaces]]\nid = \"A1\"\nbase_price = -1.0\n",
			wantErr: "base_price must be a non-negative number",
		},
		{
			name:    "price too large",
			content: "users = [\"a\"]\n[[spaces]]\nid = \"A1\"\nbase_price = 1e17\n",
			wantErr: "base_price must be at most 1000000000",
		},
		{
			name:    "percent too large",
			content: "users = [\"a\"]\n[pricing]\npeak_percent = 5000\n[[spaces]]\nid = \"A1\"\nbase_price = 1.0\n",
			wantErr: "pricing: peak_percent and off_peak_percent must be within 1..1000",
		},
		{
			name:    "no users",
			content: "[[spaces]]\nid = \"A1\"\nbase_price = 1.0\n",
			wantErr: "at least one user is required",
		},
		{
			name:    "no spaces",
			content: "users = [\"a\"]\n",
			wantErr: "at least one space is required",
		},
		{
			name:    "bad pricing window",
			content: "users = [\"a\"]\n[pricing]\npeak_start_hour = 20\npeak_end_hour = 6\n[[spaces]]\nid = \"A1\"\nbase_price = 1.0\n",
			wantErr: "pricing: peak_start_hour 20 is after peak_end_hour 6",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(writeSeed(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSeed_FileNotFound(t *testing.T) {
	_, err := LoadSeed("/nonexistent/parking.toml")
	assert.Error(t, err)
}

func TestNormalizeSpaceID(t *testing.T) {
	assert.Equal(t, "A1", NormalizeSpaceID("  a1 "))
	assert.Equal(t, "", NormalizeSpaceID("   "))
}

func TestSeedConfig_Validate_PriceBounds(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"at limit", maxBasePrice, false},
		{"above limit", maxBasePrice + 1, true},
		{"far above limit", 1e17, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &SeedConfig{Users: []string{"a"}, Spaces: []SpaceSeed{{ID: "X", BasePrice: tt.price}}}
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "base_price must be at most")
				return
			}
			require.NoError(t, err)
		})
	}
}
