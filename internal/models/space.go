package models

// Space is a parking slot. The registry is the only owner of this record;
// users refer to spaces by ID.
type Space struct {
	ID        string `json:"id"`
	BasePrice int64  `json:"base_price_cents"`
	VIP       bool   `json:"vip"`
	Reserved  bool   `json:"reserved"`
	HeldBy    string `json:"held_by,omitempty"`
}

const (
	TagVIP     = "VIP"
	TagRegular = "Regular"

	StatusReserved  = "Reserved"
	StatusAvailable = "Available"
)

// Tag returns "VIP" or "Regular".
func (s Space) Tag() string {
	if s.VIP {
		return TagVIP
	}
	return TagRegular
}

// Status returns "Reserved" or "Available".
func (s Space) Status() string {
	if s.Reserved {
		return StatusReserved
	}
	return StatusAvailable
}

// Reserve marks the space as held by userID.
func (s *Space) Reserve(userID string) {
	s.Reserved = true
	s.HeldBy = userID
}

// Release clears the reservation.
func (s *Space) Release() {
	s.Reserved = false
	s.HeldBy = ""
}
