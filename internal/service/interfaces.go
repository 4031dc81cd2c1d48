package service

// SpaceLister abstracts the registry listing for testability.
type SpaceLister interface {
	List() ([]SpaceView, error)
}

// Authenticator abstracts username login for testability.
type Authenticator interface {
	Login(username string) (*Session, error)
}

// Reserver abstracts the reservation engine for testability.
type Reserver interface {
	Reserve(session *Session, spaceID string) error
	Vacate(session *Session, spaceID string) error
	History(session *Session) ([]SpaceView, error)
}

var (
	_ SpaceLister   = (*SpaceRegistry)(nil)
	_ Authenticator = (*UserDirectory)(nil)
	_ Reserver      = (*ReservationEngine)(nil)
)
