package readstore

import (
	"context"

	"localshop-api/internal/infra"
	"localshop-api/internal/infra/db"
	"localshop-api/internal/infra/pgconv"
	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const shopViewColumns = `
	s.id, s.owner_id, u.name, u.email, u.phone,
	s.shop_name, s.category, s.city, s.address,
	s.opening_time, s.closing_time, s.offers_delivery, s.rating,
	s.subscription_expires_at, s.created_at, s.updated_at`

const shopViewFrom = `
	FROM shops s
	JOIN users u ON u.id = s.owner_id`

type ShopReadStore struct {
	db db.DBTX
}

func NewShopReadStore(db db.DBTX) *ShopReadStore {
	return &ShopReadStore{db: db}
}

func (r *ShopReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ShopView, error) {
	row := r.db.QueryRow(ctx, `SELECT`+shopViewColumns+shopViewFrom+` WHERE s.id = $1`, id)

	view, err := scanShopView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shop by ID", err)
	}
	return view, nil
}

// FindByOwner resolves the shop belonging to a shopkeeper. Ownership is 1:1.
func (r *ShopReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.ShopView, error) {
	row := r.db.QueryRow(ctx, `SELECT`+shopViewColumns+shopViewFrom+` WHERE s.owner_id = $1`, ownerID)

	view, err := scanShopView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shop not found for this user", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shop by owner", err)
	}
	return view, nil
}

// List returns shops matching the filter. Empty or "All" filter values match
// everything; search matches the shop name case-insensitively.
func (r *ShopReadStore) List(ctx context.Context, filter queries.ShopFilter) ([]*queries.ShopView, error) {
	sql := `SELECT` + shopViewColumns + shopViewFrom + `
		 WHERE ($1 = '' OR s.city = $1)
		   AND ($2 = '' OR s.category = $2)
		   AND ($3 = '' OR s.shop_name ILIKE '%' || $3 || '%')
		 ORDER BY s.created_at DESC`

	city := filter.City
	if city == "All" {
		city = ""
	}
	category := filter.Category
	if category == "All" {
		category = ""
	}

	rows, err := r.db.Query(ctx, sql, city, category, filter.Search)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shops", err)
	}
	defer rows.Close()

	var result []*queries.ShopView
	for rows.Next() {
		view, err := scanShopView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan shop row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shop rows", err)
	}
	return result, nil
}

func scanShopView(row pgx.Row) (*queries.ShopView, error) {
	var (
		view                 queries.ShopView
		subscriptionExpires  pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.OwnerID, &view.OwnerName, &view.OwnerEmail, &view.OwnerPhone,
		&view.Name, &view.Category, &view.City, &view.Address,
		&view.OpeningTime, &view.ClosingTime, &view.OffersDelivery, &view.Rating,
		&subscriptionExpires, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.SubscriptionExpiresAt = pgconv.TimeFromPgtype(subscriptionExpires)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
