//go:build unit || e2e

package builder

import (
	"time"

	domproduct "localshop-api/internal/domain/product"
	reqdto "localshop-api/internal/handler/dto/request"
	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ShopID      uuid.UUID
	Name        string
	Description string
	Price       string
	Image       string
	Duration    string
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	now := time.Now()
	return &ProductBuilder{
		ShopID:      uuid.New(),
		Name:        "Basmati Rice",
		Description: "Premium long grain rice",
		Price:       "120",
		Image:       "https://example.com/rice.jpg",
		InStock:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	return domproduct.NewProduct(b.ShopID, b.Name, b.Description, b.Price, b.Image, b.Duration)
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:          uuid.New(),
		ShopID:      b.ShopID,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		Image:       b.Image,
		Duration:    b.Duration,
		InStock:     b.InStock,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		Image:       b.Image,
		Duration:    b.Duration,
	}
}

// Fluent builder methods
func (b *ProductBuilder) WithShopID(id uuid.UUID) *ProductBuilder {
	b.ShopID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.Price = price
	return b
}

func (b *ProductBuilder) AsWeighted() *ProductBuilder {
	b.Name = "Fresh Tomatoes"
	b.Price = "80/kg"
	return b
}

func (b *ProductBuilder) AsService(duration string) *ProductBuilder {
	b.Name = "Haircut"
	b.Description = "Classic haircut and styling"
	b.Price = "300"
	b.Duration = duration
	return b
}
