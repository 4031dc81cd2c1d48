package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the reservation services. The shell turns
// each of them into a panel message; none of them is fatal.
var (
	ErrNoSession       = errors.New("no active session")
	ErrInvalidUser     = errors.New("invalid username")
	ErrSpaceNotFound   = errors.New("space not found")
	ErrAlreadyReserved = errors.New("space already reserved")
	ErrNotReserved     = errors.New("space not reserved")
)

// InvalidUserError reports a failed login together with the usernames that
// would have been accepted.
type InvalidUserError struct {
	Username string
	Valid    []string
}

func (e *InvalidUserError) Error() string {
	return fmt.Sprintf("invalid username %q (valid: %s)", e.Username, strings.Join(e.Valid, ", "))
}

func (e *InvalidUserError) Unwrap() error {
	return ErrInvalidUser
}
