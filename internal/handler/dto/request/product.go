package request

import (
	"localshop-api/internal/usecase/commands"
)

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Image       string `json:"image"`
	Duration    string `json:"duration"`
}

func (r CreateProductRequest) ToParams() commands.CreateProductParams {
	return commands.CreateProductParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Duration:    r.Duration,
	}
}
