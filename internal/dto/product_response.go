package dto

import (
	"time"

	"product-catalog-service/internal/domain"
)

type SizeResponse struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ProductResponse exposes both the store-native _id and the uniform id field
// the frontend expects. The normalization happens here, once, for products and
// their nested comments alike.
type ProductResponse struct {
	MongoID   string            `json:"_id"`
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	ImageURL  string            `json:"imageUrl"`
	Count     int64             `json:"count"`
	Size      SizeResponse      `json:"size"`
	Weight    string            `json:"weight"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Comments  []CommentResponse `json:"comments"`
}

func FromProduct(product domain.Product, comments []domain.Comment) ProductResponse {
	id := product.ID.Hex()
	return ProductResponse{
		MongoID:   id,
		ID:        id,
		Name:      product.Name,
		ImageURL:  product.ImageURL,
		Count:     product.Count,
		Size:      SizeResponse{Width: product.Size.Width, Height: product.Size.Height},
		Weight:    product.Weight,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
		Comments:  FromComments(comments),
	}
}
