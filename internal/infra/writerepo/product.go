package writerepo

import (
	"context"

	"localshop-api/internal/domain/product"
	"localshop-api/internal/infra"
	"localshop-api/internal/infra/db"
	"localshop-api/internal/infra/pgconv"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(db db.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, shop_id, name, description, price, image, duration, in_stock,
			created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`,
		p.ID(), p.ShopID(), p.Name(), p.Description(), p.Price(), p.Image(),
		pgconv.StringToPgtype(p.Duration()), p.InStock(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create product", err, classifyPgErr(err))
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
