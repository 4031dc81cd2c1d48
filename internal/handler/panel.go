package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/EpicMandM/parking-lot/internal/logger"
	"github.com/EpicMandM/parking-lot/internal/pricing"
	"github.com/EpicMandM/parking-lot/internal/service"
)

// Fixed panel messages.
const (
	MsgLoginFirst     = "Please log in first."
	MsgNoSpaceID      = "No space ID entered."
	MsgNoReservations = "No reservations made yet."
	MsgTryAgain       = "Unable to complete the request. Please try again."

	listingHeader = "Available Parking Spaces:"
	historyHeader = "Your reservation history:"
)

// PanelHandler turns form actions into the text shown in the info panel.
// Every method returns the complete new panel contents.
type PanelHandler struct {
	spaces       service.SpaceLister
	auth         service.Authenticator
	reservations service.Reserver
	logger       *logger.Logger
}

func NewPanelHandler(spaces service.SpaceLister, auth service.Authenticator, reservations service.Reserver, log *logger.Logger) *PanelHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &PanelHandler{
		spaces:       spaces,
		auth:         auth,
		reservations: reservations,
		logger:       log,
	}
}

// Login returns the new session, or nil when the username is unknown.
func (h *PanelHandler) Login(username string) (*service.Session, string) {
	session, err := h.auth.Login(username)
	if err != nil {
		var invalid *service.InvalidUserError
		if errors.As(err, &invalid) {
			return nil, fmt.Sprintf("Invalid username. Available usernames: %s.\n", strings.Join(invalid.Valid, ", "))
		}
		h.logger.Error("Login failed", logger.Action("login"), logger.Error(err))
		return nil, MsgTryAgain + "\n"
	}
	return session, fmt.Sprintf("Welcome, %s!\n", session.UserID) + h.listing()
}

// Reserve expects spaceID already normalized.
func (h *PanelHandler) Reserve(session *service.Session, spaceID string) string {
	if session == nil {
		return MsgLoginFirst + "\n"
	}
	if spaceID == "" {
		return MsgNoSpaceID + "\n"
	}
	if err := h.reservations.Reserve(session, spaceID); err != nil {
		return h.failure("reserve", spaceID, err)
	}
	return fmt.Sprintf("Space %s has been reserved.\n", spaceID) + h.listing()
}

// Vacate expects spaceID already normalized.
func (h *PanelHandler) Vacate(session *service.Session, spaceID string) string {
	if session == nil {
		return MsgLoginFirst + "\n"
	}
	if spaceID == "" {
		return MsgNoSpaceID + "\n"
	}
	if err := h.reservations.Vacate(session, spaceID); err != nil {
		return h.failure("vacate", spaceID, err)
	}
	return fmt.Sprintf("Space %s has been vacated.\n", spaceID) + h.listing()
}

func (h *PanelHandler) History(session *service.Session) string {
	views, err := h.reservations.History(session)
	if err != nil {
		return h.failure("history", "", err)
	}
	if len(views) == 0 {
		return MsgNoReservations + "\n"
	}
	var b strings.Builder
	b.WriteString(historyHeader + "\n")
	for _, v := range views {
		b.WriteString(spaceLine(v) + "\n")
	}
	return b.String()
}

// Spaces renders the full listing on its own.
func (h *PanelHandler) Spaces() string {
	return h.listing()
}

func (h *PanelHandler) listing() string {
	views, err := h.spaces.List()
	if err != nil {
		h.logger.Error("Failed to list spaces", logger.Action("list"), logger.Error(err))
		return MsgTryAgain + "\n"
	}
	var b strings.Builder
	b.WriteString(listingHeader + "\n")
	for _, v := range views {
		fmt.Fprintf(&b, "%s | Status: %s\n", spaceLine(v), v.Status())
	}
	return b.String()
}

func (h *PanelHandler) failure(action, spaceID string, err error) string {
	switch {
	case errors.Is(err, service.ErrNoSession):
		return MsgLoginFirst + "\n"
	case errors.Is(err, service.ErrSpaceNotFound):
		return fmt.Sprintf("Space %s does not exist.\n", spaceID)
	case errors.Is(err, service.ErrAlreadyReserved):
		return fmt.Sprintf("Space %s is already reserved.\n", spaceID)
	case errors.Is(err, service.ErrNotReserved):
		return fmt.Sprintf("Space %s is not reserved.\n", spaceID)
	}
	h.logger.Error("Action failed", logger.Action(action), logger.Space(spaceID), logger.Error(err))
	return MsgTryAgain + "\n"
}

func spaceLine(v service.SpaceView) string {
	return fmt.Sprintf("Space ID: %s, Price: %s | %s", v.ID, pricing.FormatCents(v.Price), v.Tag())
}
