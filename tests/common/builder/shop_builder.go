//go:build unit || e2e

package builder

import (
	"time"

	domshop "localshop-api/internal/domain/shop"
	reqdto "localshop-api/internal/handler/dto/request"
	"localshop-api/internal/usecase/commands"
	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShopBuilder struct {
	OwnerID               uuid.UUID
	OwnerName             string
	OwnerEmail            string
	OwnerPhone            string
	Password              string
	Name                  string
	Category              string
	City                  string
	Address               string
	OpeningTime           string
	ClosingTime           string
	OffersDelivery        bool
	Rating                float64
	SubscriptionExpiresAt time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func NewShopBuilder() *ShopBuilder {
	now := time.Now()
	return &ShopBuilder{
		OwnerID:               uuid.New(),
		OwnerName:             "Ramesh Sharma",
		OwnerEmail:            "owner@example.com",
		OwnerPhone:            "9876543210",
		Password:              "password123",
		Name:                  "Sharma General Store",
		Category:              "Grocery",
		City:                  "Jaipur",
		Address:               "12 MI Road",
		OpeningTime:           "09:00",
		ClosingTime:           "21:00",
		OffersDelivery:        true,
		SubscriptionExpiresAt: now.Add(30 * 24 * time.Hour),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func (b *ShopBuilder) With(mutate func(*ShopBuilder)) *ShopBuilder {
	mutate(b)
	return b
}

func (b *ShopBuilder) BuildDomain() (*domshop.Shop, error) {
	return domshop.NewShop(
		b.OwnerID,
		b.Name,
		domshop.Category(b.Category),
		b.City, b.Address,
		b.OpeningTime, b.ClosingTime,
		b.OffersDelivery,
		b.SubscriptionExpiresAt,
	)
}

func (b *ShopBuilder) BuildView() *queries.ShopView {
	return &queries.ShopView{
		ID:                    uuid.New(),
		OwnerID:               b.OwnerID,
		OwnerName:             b.OwnerName,
		OwnerEmail:            b.OwnerEmail,
		OwnerPhone:            b.OwnerPhone,
		Name:                  b.Name,
		Category:              b.Category,
		City:                  b.City,
		Address:               b.Address,
		OpeningTime:           b.OpeningTime,
		ClosingTime:           b.ClosingTime,
		OffersDelivery:        b.OffersDelivery,
		Rating:                b.Rating,
		SubscriptionExpiresAt: b.SubscriptionExpiresAt,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

func (b *ShopBuilder) BuildRegisterRequestDTO() reqdto.RegisterShopRequest {
	return reqdto.RegisterShopRequest{
		OwnerName:      b.OwnerName,
		Email:          b.OwnerEmail,
		Password:       b.Password,
		Phone:          b.OwnerPhone,
		ShopName:       b.Name,
		Category:       b.Category,
		City:           b.City,
		Address:        b.Address,
		OpeningTime:    b.OpeningTime,
		ClosingTime:    b.ClosingTime,
		OffersDelivery: b.OffersDelivery,
	}
}

func (b *ShopBuilder) BuildRegisterParams() commands.RegisterShopParams {
	return commands.RegisterShopParams{
		OwnerName:      b.OwnerName,
		Email:          b.OwnerEmail,
		Password:       b.Password,
		Phone:          b.OwnerPhone,
		ShopName:       b.Name,
		Category:       b.Category,
		City:           b.City,
		Address:        b.Address,
		OpeningTime:    b.OpeningTime,
		ClosingTime:    b.ClosingTime,
		OffersDelivery: b.OffersDelivery,
	}
}

// Fluent builder methods
func (b *ShopBuilder) WithOwnerID(id uuid.UUID) *ShopBuilder {
	b.OwnerID = id
	return b
}

func (b *ShopBuilder) WithName(name string) *ShopBuilder {
	b.Name = name
	return b
}

func (b *ShopBuilder) WithCategory(category string) *ShopBuilder {
	b.Category = category
	return b
}

func (b *ShopBuilder) WithCity(city string) *ShopBuilder {
	b.City = city
	return b
}

func (b *ShopBuilder) WithOpeningTime(openingTime string) *ShopBuilder {
	b.OpeningTime = openingTime
	return b
}

func (b *ShopBuilder) AsSalon() *ShopBuilder {
	b.Name = "Glamour Salon"
	b.Category = "Salon"
	return b
}
