package order

import (
	"errors"

	"github.com/google/uuid"

	"localshop-api/internal/domain/user"
)

var (
	ErrNotOrderOwner      = errors.New("order belongs to another customer")
	ErrCustomerTransition = errors.New("customers may only cancel pending orders")
	ErrIllegalTransition  = errors.New("illegal status transition")
)

// adjacency is the strict state machine:
// Pending → Confirmed/Cancelled, Confirmed → Preparing/Cancelled,
// Preparing → Completed/Cancelled. Completed and Cancelled are terminal.
var adjacency = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// TransitionPolicy decides who may move an order between statuses.
//
// With Strict disabled (the default) shopkeepers may set any status from any
// status, terminal ones included; shops use this to fix mis-tapped statuses.
// With Strict enabled the adjacency above is enforced and terminal states
// are locked.
type TransitionPolicy struct {
	Strict bool
}

// Authorize validates the transition of o to next by the given actor.
// It does not mutate the order; persistence applies the status change under
// an optimistic version check.
func (p TransitionPolicy) Authorize(o *Order, next Status, actorID uuid.UUID, role user.Role) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}

	switch role {
	case user.RoleShopkeeper:
		if !p.Strict {
			return nil
		}
		return checkAdjacent(o.Status(), next)

	case user.RoleCustomer:
		if !o.IsOwnedBy(actorID) {
			return ErrNotOrderOwner
		}
		if next != StatusCancelled || o.Status() != StatusPending {
			return ErrCustomerTransition
		}
		return nil

	default:
		return user.ErrInvalidRole
	}
}

func checkAdjacent(from, to Status) error {
	for _, allowed := range adjacency[from] {
		if allowed == to {
			return nil
		}
	}
	return ErrIllegalTransition
}
