package commands

import (
	"context"

	"localshop-api/internal/domain/order"
	"localshop-api/internal/domain/product"
	"localshop-api/internal/domain/shop"
	"localshop-api/internal/domain/user"
	"localshop-api/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports. Implemented by internal/infra/writerepo.

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next order.Status, expectedVersion int32) error
}

type ShopRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *shop.Shop) error
	UpdateProfile(ctx context.Context, ownerID uuid.UUID, patch ShopProfilePatch) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
}

// ShopProfilePatch carries optional profile fields. Nil means keep current.
type ShopProfilePatch struct {
	ShopName       *string
	Category       *string
	City           *string
	Address        *string
	OpeningTime    *string
	ClosingTime    *string
	OffersDelivery *bool
}
