package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoItems = errors.New("no order items")

// GracePeriod is how long a terminal order stays visible in the live queue,
// measured from its last update. Recently finished orders need to remain in
// sight for reference without cluttering the queue forever.
const GracePeriod = 48 * time.Hour

type Order struct {
	id          uuid.UUID
	shopID      uuid.UUID
	customerID  uuid.UUID
	orderType   Type
	items       []Item
	pricing     Pricing
	status      Status
	appointment Appointment
	version     int32
	createdAt   time.Time
	updatedAt   time.Time
}

// NewOrder builds a fresh Pending order from validated parts.
func NewOrder(
	shopID, customerID uuid.UUID,
	orderType Type,
	items []Item,
	pricing Pricing,
	appointment Appointment,
) (*Order, error) {
	if !orderType.IsValid() {
		return nil, ErrInvalidOrderType
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	return &Order{
		id:          uuid.New(),
		shopID:      shopID,
		customerID:  customerID,
		orderType:   orderType,
		items:       items,
		pricing:     pricing,
		status:      StatusPending,
		appointment: appointment,
		version:     1,
	}, nil
}

func ReconstructOrder(
	id, shopID, customerID uuid.UUID,
	orderType Type,
	items []Item,
	pricing Pricing,
	status Status,
	appointment Appointment,
	version int32,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:          id,
		shopID:      shopID,
		customerID:  customerID,
		orderType:   orderType,
		items:       items,
		pricing:     pricing,
		status:      status,
		appointment: appointment,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// IsActiveAt reports whether the order belongs in the live queue at the
// given instant: not terminal, or terminal but still inside the grace
// window measured from updatedAt.
func (o *Order) IsActiveAt(now time.Time) bool {
	if !o.status.IsTerminal() {
		return true
	}
	return now.Sub(o.updatedAt) < GracePeriod
}

func (o *Order) IsOwnedBy(customerID uuid.UUID) bool {
	return o.customerID == customerID
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) ShopID() uuid.UUID       { return o.shopID }
func (o *Order) CustomerID() uuid.UUID   { return o.customerID }
func (o *Order) OrderType() Type         { return o.orderType }
func (o *Order) Items() []Item           { return o.items }
func (o *Order) Pricing() Pricing        { return o.pricing }
func (o *Order) Status() Status          { return o.status }
func (o *Order) Appointment() Appointment { return o.appointment }
func (o *Order) Version() int32          { return o.version }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) UpdatedAt() time.Time    { return o.updatedAt }
