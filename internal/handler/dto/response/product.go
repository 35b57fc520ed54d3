package response

import (
	"time"

	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	ShopID      uuid.UUID `json:"shopId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Duration    string    `json:"duration,omitempty"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromProductView(rm *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:          rm.ID,
		ShopID:      rm.ShopID,
		Name:        rm.Name,
		Description: rm.Description,
		Price:       rm.Price,
		Image:       rm.Image,
		Duration:    rm.Duration,
		InStock:     rm.InStock,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromProductViews(rms []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromProductView(rm)
	}
	return out
}
