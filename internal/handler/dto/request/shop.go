package request

import (
	"localshop-api/internal/usecase/commands"
)

type RegisterShopRequest struct {
	OwnerName      string `json:"owner_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	ShopName       string `json:"shop_name" binding:"required"`
	Category       string `json:"category" binding:"required"`
	City           string `json:"city" binding:"required"`
	Address        string `json:"address" binding:"required"`
	OpeningTime    string `json:"opening_time"`
	ClosingTime    string `json:"closing_time"`
	OffersDelivery bool   `json:"offers_delivery"`
}

func (r RegisterShopRequest) ToParams() commands.RegisterShopParams {
	return commands.RegisterShopParams{
		OwnerName:      r.OwnerName,
		Email:          r.Email,
		Password:       r.Password,
		Phone:          r.Phone,
		ShopName:       r.ShopName,
		Category:       r.Category,
		City:           r.City,
		Address:        r.Address,
		OpeningTime:    r.OpeningTime,
		ClosingTime:    r.ClosingTime,
		OffersDelivery: r.OffersDelivery,
	}
}

type UpdateShopProfileRequest struct {
	ShopName       *string `json:"shop_name,omitempty"`
	Category       *string `json:"category,omitempty"`
	City           *string `json:"city,omitempty"`
	Address        *string `json:"address,omitempty"`
	OpeningTime    *string `json:"opening_time,omitempty"`
	ClosingTime    *string `json:"closing_time,omitempty"`
	OffersDelivery *bool   `json:"offers_delivery,omitempty"`
}

func (r UpdateShopProfileRequest) ToPatch() commands.ShopProfilePatch {
	return commands.ShopProfilePatch{
		ShopName:       r.ShopName,
		Category:       r.Category,
		City:           r.City,
		Address:        r.Address,
		OpeningTime:    r.OpeningTime,
		ClosingTime:    r.ClosingTime,
		OffersDelivery: r.OffersDelivery,
	}
}
