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

const productColumns = `
	id, shop_id, name, description, price, image, duration, in_stock, created_at, updated_at`

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(db db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := r.db.QueryRow(ctx, `SELECT`+productColumns+` FROM products WHERE id = $1`, id)

	view, err := scanProductView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return view, nil
}

// FindByShop returns the shop's catalog, newest first. An empty catalog is
// an empty slice, not an error.
func (r *ProductReadStore) FindByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+productColumns+` FROM products WHERE shop_id = $1 ORDER BY created_at DESC`, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shop products", err)
	}
	return collectProducts(rows)
}

// FindByIDs resolves a set of catalog entries for placement validation.
func (r *ProductReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.ProductView, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT`+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products by IDs", err)
	}
	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]*queries.ProductView, error) {
	defer rows.Close()

	var result []*queries.ProductView
	for rows.Next() {
		view, err := scanProductView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return result, nil
}

func scanProductView(row pgx.Row) (*queries.ProductView, error) {
	var (
		view                 queries.ProductView
		duration             pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.ShopID, &view.Name, &view.Description, &view.Price,
		&view.Image, &duration, &view.InStock, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.Duration = pgconv.StringFromPgtype(duration)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
