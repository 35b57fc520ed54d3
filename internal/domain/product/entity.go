package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrMissingFields = errors.New("name, price and description are required")

const defaultImage = "https://via.placeholder.com/150"

// Product is a catalog entry. Price stays text so shops can price by weight
// or duration; Duration is only meaningful for service shops.
type Product struct {
	id          uuid.UUID
	shopID      uuid.UUID
	name        string
	description string
	price       string
	image       string
	duration    string
	inStock     bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(shopID uuid.UUID, name, description, price, image, duration string) (*Product, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	price = strings.TrimSpace(price)
	if name == "" || description == "" || price == "" {
		return nil, ErrMissingFields
	}
	if image == "" {
		image = defaultImage
	}

	return &Product{
		id:          uuid.New(),
		shopID:      shopID,
		name:        name,
		description: description,
		price:       price,
		image:       image,
		duration:    strings.TrimSpace(duration),
		inStock:     true,
	}, nil
}

func ReconstructProduct(
	id, shopID uuid.UUID,
	name, description, price, image, duration string,
	inStock bool,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		shopID:      shopID,
		name:        name,
		description: description,
		price:       price,
		image:       image,
		duration:    duration,
		inStock:     inStock,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) BelongsTo(shopID uuid.UUID) bool {
	return p.shopID == shopID
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) ShopID() uuid.UUID    { return p.shopID }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() string        { return p.price }
func (p *Product) Image() string        { return p.image }
func (p *Product) Duration() string     { return p.duration }
func (p *Product) InStock() bool        { return p.inStock }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
