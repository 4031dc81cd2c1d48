package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/EpicMandM/parking-lot/internal/logger"
	"github.com/EpicMandM/parking-lot/internal/models"
	"github.com/EpicMandM/parking-lot/internal/store"
	"github.com/google/uuid"
)

// Session identifies the logged-in user. It is returned by Login and passed
// explicitly to every reservation call; nil means nobody is logged in.
type Session struct {
	ID        string
	UserID    string
	StartedAt time.Time
}

// UserDirectory resolves usernames to users.
type UserDirectory struct {
	store  store.Store
	logger *logger.Logger
	now    func() time.Time
}

func NewUserDirectory(st store.Store, log *logger.Logger) *UserDirectory {
	if log == nil {
		log = logger.Discard()
	}
	return &UserDirectory{
		store:  st,
		logger: log,
		now:    time.Now,
	}
}

// Login trims and lower-cases username before the lookup. An unknown name
// yields an *InvalidUserError listing the valid usernames.
func (d *UserDirectory) Login(username string) (*Session, error) {
	name := normalizeUsername(username)
	user, err := d.store.GetUser(name)
	if errors.Is(err, store.ErrNotFound) {
		valid, lerr := d.Usernames()
		if lerr != nil {
			return nil, lerr
		}
		d.logger.Warn("Login rejected", logger.Action("login"), logger.User(name), logger.Reason("unknown_user"))
		return nil, &InvalidUserError{Username: name, Valid: valid}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user %s: %w", name, err)
	}

	session := &Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		StartedAt: d.now(),
	}
	d.logger.Info("User logged in", logger.Action("login"), logger.Status("success"),
		logger.User(user.ID), logger.Session(session.ID))
	return session, nil
}

// Usernames returns the accepted usernames in seed order.
func (d *UserDirectory) Usernames() ([]string, error) {
	users, err := d.store.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.ID)
	}
	return names, nil
}

func (d *UserDirectory) user(session *Session) (*models.User, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	user, err := d.store.GetUser(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("session user %s: %w", session.UserID, err)
	}
	return user, nil
}
