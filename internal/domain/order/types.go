package order

import "errors"

var (
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrInvalidOrderType = errors.New("invalid order type")
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusPreparing Status = "Preparing"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further business action is expected.
// Terminal orders leave the live queue once the grace period elapses.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ParseStatus resolves a wire status string. The retail UI historically sent
// "Accepted" for the confirmation step; it maps to Confirmed.
func ParseStatus(s string) (Status, error) {
	if s == "Accepted" {
		return StatusConfirmed, nil
	}
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Type string

const (
	TypeRetail  Type = "Retail"
	TypeService Type = "Service"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return t == TypeRetail || t == TypeService
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidOrderType
	}
	return t, nil
}
