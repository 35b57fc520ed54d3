package shop

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyShopName = errors.New("shop name must not be empty")
	ErrEmptyCity     = errors.New("city must not be empty")
	ErrEmptyAddress  = errors.New("address must not be empty")
)

type Shop struct {
	id                    uuid.UUID
	ownerID               uuid.UUID
	name                  string
	category              Category
	city                  string
	address               string
	openingTime           string
	closingTime           string
	offersDelivery        bool
	rating                float64
	subscriptionExpiresAt time.Time
	createdAt             time.Time
	updatedAt             time.Time
}

// NewShop builds a shop for registration. subscriptionExpiresAt is supplied
// by the caller (now + subscription term); expiry enforcement itself stays
// with the access-control layer.
func NewShop(
	ownerID uuid.UUID,
	name string,
	category Category,
	city, address string,
	openingTime, closingTime string,
	offersDelivery bool,
	subscriptionExpiresAt time.Time,
) (*Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyShopName
	}
	if strings.TrimSpace(city) == "" {
		return nil, ErrEmptyCity
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrEmptyAddress
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if openingTime == "" {
		openingTime = "09:00"
	}
	if closingTime == "" {
		closingTime = "21:00"
	}

	return &Shop{
		id:                    uuid.New(),
		ownerID:               ownerID,
		name:                  name,
		category:              category,
		city:                  strings.TrimSpace(city),
		address:               strings.TrimSpace(address),
		openingTime:           openingTime,
		closingTime:           closingTime,
		offersDelivery:        offersDelivery,
		subscriptionExpiresAt: subscriptionExpiresAt,
	}, nil
}

func ReconstructShop(
	id, ownerID uuid.UUID,
	name string,
	category Category,
	city, address string,
	openingTime, closingTime string,
	offersDelivery bool,
	rating float64,
	subscriptionExpiresAt time.Time,
	createdAt, updatedAt time.Time,
) *Shop {
	return &Shop{
		id:                    id,
		ownerID:               ownerID,
		name:                  name,
		category:              category,
		city:                  city,
		address:               address,
		openingTime:           openingTime,
		closingTime:           closingTime,
		offersDelivery:        offersDelivery,
		rating:                rating,
		subscriptionExpiresAt: subscriptionExpiresAt,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

// CurrentCycleStart derives the start of the shop's running business day.
func (s *Shop) CurrentCycleStart(now time.Time) time.Time {
	return CycleStart(s.openingTime, now)
}

func (s *Shop) SubscriptionExpired(now time.Time) bool {
	return now.After(s.subscriptionExpiresAt)
}

func (s *Shop) ID() uuid.UUID                   { return s.id }
func (s *Shop) OwnerID() uuid.UUID              { return s.ownerID }
func (s *Shop) Name() string                    { return s.name }
func (s *Shop) Category() Category              { return s.category }
func (s *Shop) City() string                    { return s.city }
func (s *Shop) Address() string                 { return s.address }
func (s *Shop) OpeningTime() string             { return s.openingTime }
func (s *Shop) ClosingTime() string             { return s.closingTime }
func (s *Shop) OffersDelivery() bool            { return s.offersDelivery }
func (s *Shop) Rating() float64                 { return s.rating }
func (s *Shop) SubscriptionExpiresAt() time.Time { return s.subscriptionExpiresAt }
func (s *Shop) CreatedAt() time.Time            { return s.createdAt }
func (s *Shop) UpdatedAt() time.Time            { return s.updatedAt }
