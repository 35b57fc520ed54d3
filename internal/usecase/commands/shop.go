package commands

import (
	"context"
	"errors"
	"log/slog"

	"localshop-api/internal/domain/shop"
	"localshop-api/internal/domain/user"
	"localshop-api/internal/infra"
	"localshop-api/internal/pkg/clock"
	"localshop-api/internal/pkg/config"
	"localshop-api/internal/pkg/errs"
	"localshop-api/internal/pkg/password"
	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegisterShopParams struct {
	OwnerName      string
	Email          string
	Password       string
	Phone          string
	ShopName       string
	Category       string
	City           string
	Address        string
	OpeningTime    string
	ClosingTime    string
	OffersDelivery bool
}

type ShopCommands interface {
	RegisterShop(ctx context.Context, params RegisterShopParams) (*queries.ShopView, error)
	UpdateProfile(ctx context.Context, ownerID uuid.UUID, patch ShopProfilePatch) (*queries.ShopView, error)
}

type shopCommandsImpl struct {
	shopRepo  ShopRepository
	userRepo  UserRepository
	shopViews queries.ShopViewRepo
	clock     clock.Clock
	cfg       config.OrdersConfig
	db        *pgxpool.Pool
}

func NewShopCommands(
	shopRepo ShopRepository,
	userRepo UserRepository,
	shopViews queries.ShopViewRepo,
	clock clock.Clock,
	cfg config.OrdersConfig,
	db *pgxpool.Pool,
) ShopCommands {
	return &shopCommandsImpl{
		shopRepo:  shopRepo,
		userRepo:  userRepo,
		shopViews: shopViews,
		clock:     clock,
		cfg:       cfg,
		db:        db,
	}
}

// RegisterShop creates a shopkeeper account and their shop in one
// transaction. The subscription starts at registration and expires after
// the configured term; session issuance stays with the identity provider.
func (c *shopCommandsImpl) RegisterShop(ctx context.Context, params RegisterShopParams) (*queries.ShopView, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	phone, err := user.NewPhone(params.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if _, err := user.NewPassword(params.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	category, err := shop.NewCategory(params.Category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidShopCategory)
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	owner := user.NewUser(params.OwnerName, email, phone, hash, user.RoleShopkeeper)

	expiresAt := c.clock.Now().Add(c.cfg.SubscriptionTerm)
	shopEntity, err := shop.NewShop(
		owner.ID(), params.ShopName, category, params.City, params.Address,
		params.OpeningTime, params.ClosingTime, params.OffersDelivery, expiresAt,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, context.Canceled) {
			slog.Debug("rollback after commit or failure", "error", rollbackErr)
		}
	}()

	if err := c.userRepo.Create(ctx, tx, owner); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailAlreadyUsed)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := c.shopRepo.Create(ctx, tx, shopEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrShopAlreadyExists)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.shopViews.FindByID(ctx, shopEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// UpdateProfile applies a partial update to the caller's shop. Category, if
// present, must be one of the closed set.
func (c *shopCommandsImpl) UpdateProfile(ctx context.Context, ownerID uuid.UUID, patch ShopProfilePatch) (*queries.ShopView, error) {
	if patch.Category != nil {
		if _, err := shop.NewCategory(*patch.Category); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidShopCategory)
		}
	}

	if err := c.shopRepo.UpdateProfile(ctx, ownerID, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrShopNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.shopViews.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
