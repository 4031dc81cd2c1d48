package store

import (
	"errors"

	"github.com/EpicMandM/parking-lot/internal/models"
)

// ErrNotFound is returned when a lookup key is unknown.
var ErrNotFound = errors.New("not found")

// Store defines the operations the registry and directory need. Reads return
// copies; changes only take effect through the Save methods.
type Store interface {
	// Space related methods
	GetSpace(id string) (*models.Space, error)
	SaveSpace(space *models.Space) error
	ListSpaces() ([]*models.Space, error)

	// User related methods
	GetUser(id string) (*models.User, error)
	SaveUser(user *models.User) error
	ListUsers() ([]*models.User, error)
}
