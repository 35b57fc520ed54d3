package writerepo

import (
	"context"

	"localshop-api/internal/domain/shop"
	"localshop-api/internal/infra"
	"localshop-api/internal/infra/db"
	"localshop-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type ShopRepository struct {
	db db.DBTX
}

func NewShopRepository(db db.DBTX) *ShopRepository {
	return &ShopRepository{db: db}
}

func (r *ShopRepository) Create(ctx context.Context, tx db.DBTX, s *shop.Shop) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO shops (
			id, owner_id, shop_name, category, city, address,
			opening_time, closing_time, offers_delivery, rating,
			subscription_expires_at, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())`,
		s.ID(), s.OwnerID(), s.Name(), s.Category().String(), s.City(), s.Address(),
		s.OpeningTime(), s.ClosingTime(), s.OffersDelivery(), s.Rating(),
		s.SubscriptionExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create shop", err, classifyPgErr(err))
	}
	return nil
}

// UpdateProfile applies a partial profile update to the owner's shop.
func (r *ShopRepository) UpdateProfile(ctx context.Context, ownerID uuid.UUID, patch commands.ShopProfilePatch) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE shops SET
			shop_name       = COALESCE($2, shop_name),
			category        = COALESCE($3, category),
			city            = COALESCE($4, city),
			address         = COALESCE($5, address),
			opening_time    = COALESCE($6, opening_time),
			closing_time    = COALESCE($7, closing_time),
			offers_delivery = COALESCE($8, offers_delivery),
			updated_at      = now()
		 WHERE owner_id = $1`,
		ownerID, patch.ShopName, patch.Category, patch.City, patch.Address,
		patch.OpeningTime, patch.ClosingTime, patch.OffersDelivery,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update shop profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shop not found for this user", nil, infra.KindNotFound)
	}
	return nil
}
