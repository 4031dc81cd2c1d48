package models

import "slices"

// User holds the IDs of the spaces it currently has reserved, in the order
// they were reserved.
type User struct {
	ID       string   `json:"id"`
	SpaceIDs []string `json:"space_ids"`
}

func NewUser(id string) *User {
	return &User{ID: id}
}

// Holds reports whether spaceID is in the user's reservation set.
func (u *User) Holds(spaceID string) bool {
	return slices.Contains(u.SpaceIDs, spaceID)
}

// Hold adds spaceID to the reservation set. Adding an ID twice is a no-op.
func (u *User) Hold(spaceID string) {
	if u.Holds(spaceID) {
		return
	}
	u.SpaceIDs = append(u.SpaceIDs, spaceID)
}

// Release removes spaceID and reports whether it was present.
func (u *User) Release(spaceID string) bool {
	i := slices.Index(u.SpaceIDs, spaceID)
	if i < 0 {
		return false
	}
	u.SpaceIDs = slices.Delete(u.SpaceIDs, i, i+1)
	return true
}

// Clone returns a deep copy.
func (u *User) Clone() *User {
	return &User{
		ID:       u.ID,
		SpaceIDs: slices.Clone(u.SpaceIDs),
	}
}
