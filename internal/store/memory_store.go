package store

import (
	"fmt"

	"github.com/EpicMandM/parking-lot/internal/models"
)

// MemoryStore keeps spaces and users in process memory, remembering the
// order in which keys were first saved. It is not safe for concurrent use.
type MemoryStore struct {
	spaces     map[string]models.Space
	spaceOrder []string
	users      map[string]*models.User
	userOrder  []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		spaces: make(map[string]models.Space),
		users:  make(map[string]*models.User),
	}
}

func (s *MemoryStore) GetSpace(id string) (*models.Space, error) {
	space, ok := s.spaces[id]
	if !ok {
		return nil, fmt.Errorf("space %q: %w", id, ErrNotFound)
	}
	return &space, nil
}

func (s *MemoryStore) SaveSpace(space *models.Space) error {
	if space == nil || space.ID == "" {
		return fmt.Errorf("space id is required")
	}
	if _, ok := s.spaces[space.ID]; !ok {
		s.spaceOrder = append(s.spaceOrder, space.ID)
	}
	s.spaces[space.ID] = *space
	return nil
}

func (s *MemoryStore) ListSpaces() ([]*models.Space, error) {
	spaces := make([]*models.Space, 0, len(s.spaceOrder))
	for _, id := range s.spaceOrder {
		space := s.spaces[id]
		spaces = append(spaces, &space)
	}
	return spaces, nil
}

func (s *MemoryStore) GetUser(id string) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	return user.Clone(), nil
}

func (s *MemoryStore) SaveUser(user *models.User) error {
	if user == nil || user.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if _, ok := s.users[user.ID]; !ok {
		s.userOrder = append(s.userOrder, user.ID)
	}
	s.users[user.ID] = user.Clone()
	return nil
}

func (s *MemoryStore) ListUsers() ([]*models.User, error) {
	users := make([]*models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id].Clone())
	}
	return users, nil
}
