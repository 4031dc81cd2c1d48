package store

import (
	"testing"

	"github.com/EpicMandM/parking-lot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ImplementsStore(t *testing.T) {
	var _ Store = NewMemoryStore()
}

func TestMemoryStore_SpacesKeepInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	for _, id := range []string{"B1", "A1", "A2"} {
		require.NoError(t, s.SaveSpace(&models.Space{ID: id, BasePrice: 500}))
	}
	// Re-saving must not move the key.
	require.NoError(t, s.SaveSpace(&models.Space{ID: "B1", BasePrice: 900}))

	spaces, err := s.ListSpaces()
	require.NoError(t, err)
	require.Len(t, spaces, 3)
	assert.Equal(t, "B1", spaces[0].ID)
	assert.Equal(t, int64(900), spaces[0].BasePrice)
	assert.Equal(t, "A1", spaces[1].ID)
	assert.Equal(t, "A2", spaces[2].ID)
}

func TestMemoryStore_GetSpaceReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.SaveSpace(&models.Space{ID: "A1"}))

	got, err := s.GetSpace("A1")
	require.NoError(t, err)
	got.Reserve("user1")

	again, err := s.GetSpace("A1")
	require.NoError(t, err)
	assert.False(t, again.Reserved, "mutating a read copy must not change stored state")

	require.NoError(t, s.SaveSpace(got))
	again, err = s.GetSpace("A1")
	require.NoError(t, err)
	assert.True(t, again.Reserved)
	assert.Equal(t, "user1", again.HeldBy)
}

func TestMemoryStore_NotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetSpace("Z9")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetUser("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SpaceLookupIsCaseSensitive(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.SaveSpace(&models.Space{ID: "A1"}))

	_, err := s.GetSpace("a1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Users(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.SaveUser(models.NewUser("user1")))
	require.NoError(t, s.SaveUser(models.NewUser("user2")))

	u, err := s.GetUser("user1")
	require.NoError(t, err)
	u.Hold("A1")

	stored, err := s.GetUser("user1")
	require.NoError(t, err)
	assert.Empty(t, stored.SpaceIDs)

	require.NoError(t, s.SaveUser(u))
	stored, err = s.GetUser("user1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, stored.SpaceIDs)

	users, err := s.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "user1", users[0].ID)
	assert.Equal(t, "user2", users[1].ID)
}

func TestMemoryStore_SaveRequiresID(t *testing.T) {
	s := NewMemoryStore()
	assert.Error(t, s.SaveSpace(&models.Space{}))
	assert.Error(t, s.SaveSpace(nil))
	assert.Error(t, s.SaveUser(&models.User{}))
	assert.Error(t, s.SaveUser(nil))
}
