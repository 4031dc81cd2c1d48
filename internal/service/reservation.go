package service

import (
	"fmt"

	"github.com/EpicMandM/parking-lot/internal/logger"
	"github.com/EpicMandM/parking-lot/internal/models"
	"github.com/EpicMandM/parking-lot/internal/store"
)

// ReservationEngine reserves and vacates spaces on behalf of a session.
// Every call is a single check-then-mutate step; failed calls change nothing.
type ReservationEngine struct {
	store     store.Store
	registry  *SpaceRegistry
	directory *UserDirectory
	logger    *logger.Logger
}

func NewReservationEngine(st store.Store, registry *SpaceRegistry, directory *UserDirectory, log *logger.Logger) *ReservationEngine {
	if log == nil {
		log = logger.Discard()
	}
	return &ReservationEngine{
		store:     st,
		registry:  registry,
		directory: directory,
		logger:    log,
	}
}

// Reserve fails with ErrNoSession, ErrSpaceNotFound or ErrAlreadyReserved.
func (e *ReservationEngine) Reserve(session *Session, spaceID string) error {
	user, err := e.directory.user(session)
	if err != nil {
		return err
	}
	log := e.sessionLogger(session).With(logger.Action("reserve"), logger.Space(spaceID))

	space, err := e.registry.Lookup(spaceID)
	if err != nil {
		log.Warn("Reservation rejected", logger.Reason("not_found"))
		return err
	}
	if space.Reserved {
		log.Warn("Reservation rejected", logger.Reason("already_reserved"), logger.F("HELD_BY", space.HeldBy))
		return fmt.Errorf("%w: %s", ErrAlreadyReserved, space.ID)
	}

	space.Reserve(user.ID)
	user.Hold(space.ID)
	if err := e.commit(space, user); err != nil {
		return err
	}

	log.Info("Space reserved", logger.Status("success"),
		logger.Price(e.registry.View(space, e.registry.Now()).Price))
	return nil
}

// Vacate fails with ErrNoSession, ErrSpaceNotFound or ErrNotReserved. The
// space is removed from its holder's set, which need not be the caller.
func (e *ReservationEngine) Vacate(session *Session, spaceID string) error {
	actor, err := e.directory.user(session)
	if err != nil {
		return err
	}
	log := e.sessionLogger(session).With(logger.Action("vacate"), logger.Space(spaceID))

	space, err := e.registry.Lookup(spaceID)
	if err != nil {
		log.Warn("Vacate rejected", logger.Reason("not_found"))
		return err
	}
	if !space.Reserved {
		log.Warn("Vacate rejected", logger.Reason("not_reserved"))
		return fmt.Errorf("%w: %s", ErrNotReserved, space.ID)
	}

	holder := actor
	if space.HeldBy != "" && space.HeldBy != actor.ID {
		holder, err = e.store.GetUser(space.HeldBy)
		if err != nil {
			return fmt.Errorf("holder %s of %s: %w", space.HeldBy, space.ID, err)
		}
		log.Warn("Vacating a space held by another user", logger.F("HELD_BY", space.HeldBy))
	}

	space.Release()
	holder.Release(space.ID)
	if err := e.commit(space, holder); err != nil {
		return err
	}

	log.Info("Space vacated", logger.Status("success"))
	return nil
}

// History resolves the session user's reservation set through the registry.
func (e *ReservationEngine) History(session *Session) ([]SpaceView, error) {
	user, err := e.directory.user(session)
	if err != nil {
		return nil, err
	}

	now := e.registry.Now()
	views := make([]SpaceView, 0, len(user.SpaceIDs))
	for _, id := range user.SpaceIDs {
		space, err := e.registry.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("history of %s: %w", user.ID, err)
		}
		views = append(views, e.registry.View(space, now))
	}
	return views, nil
}

func (e *ReservationEngine) commit(space *models.Space, user *models.User) error {
	if err := e.registry.save(space); err != nil {
		return fmt.Errorf("save space %s: %w", space.ID, err)
	}
	if err := e.store.SaveUser(user); err != nil {
		return fmt.Errorf("save user %s: %w", user.ID, err)
	}
	return nil
}

func (e *ReservationEngine) sessionLogger(session *Session) *logger.Logger {
	return e.logger.With(logger.Session(session.ID), logger.User(session.UserID))
}
