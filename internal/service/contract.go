package service

import (
	"context"

	"product-catalog-service/internal/dto"
)

type CatalogService interface {
	GetProducts(ctx context.Context) (data []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error)
	AddProduct(ctx context.Context, payload dto.ProductRequest) (data dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, id string, payload dto.UpdateProductRequest) (data dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	GetCommentsByProduct(ctx context.Context, productID string) (data []dto.CommentResponse, err error)
	AddComment(ctx context.Context, payload dto.CommentRequest) (data dto.CommentResponse, err error)
	DeleteComment(ctx context.Context, id string) (err error)
}
