package response

import (
	"time"

	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShopResponse struct {
	ID                    uuid.UUID `json:"id"`
	OwnerID               uuid.UUID `json:"ownerId"`
	OwnerName             string    `json:"ownerName"`
	OwnerEmail            string    `json:"ownerEmail"`
	OwnerPhone            string    `json:"ownerPhone"`
	Name                  string    `json:"name"`
	Category              string    `json:"category"`
	City                  string    `json:"city"`
	Address               string    `json:"address"`
	OpeningTime           string    `json:"openingTime"`
	ClosingTime           string    `json:"closingTime"`
	OffersDelivery        bool      `json:"offersDelivery"`
	Rating                float64   `json:"rating"`
	SubscriptionExpiresAt time.Time `json:"subscriptionExpiresAt"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// ShopListResponse is the public listing shape. Owner contact details are
// omitted on purpose.
type ShopListResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	City           string    `json:"city"`
	Address        string    `json:"address"`
	OpeningTime    string    `json:"openingTime"`
	ClosingTime    string    `json:"closingTime"`
	OffersDelivery bool      `json:"offersDelivery"`
	Rating         float64   `json:"rating"`
}

func FromShopView(rm *queries.ShopView) *ShopResponse {
	return &ShopResponse{
		ID:                    rm.ID,
		OwnerID:               rm.OwnerID,
		OwnerName:             rm.OwnerName,
		OwnerEmail:            rm.OwnerEmail,
		OwnerPhone:            rm.OwnerPhone,
		Name:                  rm.Name,
		Category:              rm.Category,
		City:                  rm.City,
		Address:               rm.Address,
		OpeningTime:           rm.OpeningTime,
		ClosingTime:           rm.ClosingTime,
		OffersDelivery:        rm.OffersDelivery,
		Rating:                rm.Rating,
		SubscriptionExpiresAt: rm.SubscriptionExpiresAt,
		CreatedAt:             rm.CreatedAt,
		UpdatedAt:             rm.UpdatedAt,
	}
}

func FromShopListItem(rm *queries.ShopView) *ShopListResponse {
	return &ShopListResponse{
		ID:             rm.ID,
		Name:           rm.Name,
		Category:       rm.Category,
		City:           rm.City,
		Address:        rm.Address,
		OpeningTime:    rm.OpeningTime,
		ClosingTime:    rm.ClosingTime,
		OffersDelivery: rm.OffersDelivery,
		Rating:         rm.Rating,
	}
}
