package commands

import (
	"context"

	"localshop-api/internal/domain/product"
	"localshop-api/internal/infra"
	"localshop-api/internal/pkg/errs"
	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateProductParams struct {
	Name        string
	Description string
	Price       string
	Image       string
	Duration    string
}

type ProductCommands interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, params CreateProductParams) (*queries.ProductView, error)
	DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error
}

type productCommandsImpl struct {
	productRepo  ProductRepository
	productViews queries.ProductViewRepo
	shopViews    queries.ShopViewRepo
}

func NewProductCommands(
	productRepo ProductRepository,
	productViews queries.ProductViewRepo,
	shopViews queries.ShopViewRepo,
) ProductCommands {
	return &productCommandsImpl{
		productRepo:  productRepo,
		productViews: productViews,
		shopViews:    shopViews,
	}
}

func (c *productCommandsImpl) CreateProduct(ctx context.Context, ownerID uuid.UUID, params CreateProductParams) (*queries.ProductView, error) {
	shopView, err := c.resolveShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	entity, err := product.NewProduct(shopView.ID, params.Name, params.Description, params.Price, params.Image, params.Duration)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.productRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.productViews.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// DeleteProduct removes a catalog entry after checking the caller's shop
// actually owns it.
func (c *productCommandsImpl) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	shopView, err := c.resolveShop(ctx, ownerID)
	if err != nil {
		return err
	}

	view, err := c.productViews.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrProductNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.ShopID != shopView.ID {
		return errs.ErrForbiddenProduct
	}

	if err := c.productRepo.Delete(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrProductNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *productCommandsImpl) resolveShop(ctx context.Context, ownerID uuid.UUID) (*queries.ShopView, error) {
	shopView, err := c.shopViews.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrShopNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return shopView, nil
}
