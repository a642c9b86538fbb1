package repository

import (
	"context"

	"product-catalog-service/internal/domain"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (stored domain.Product, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type CommentRepository interface {
	AddComment(ctx context.Context, data domain.Comment) (stored domain.Comment, err error)
	GetCommentsByProductID(ctx context.Context, productID string) (data []domain.Comment, err error)
	GetCommentByID(ctx context.Context, id string) (comment domain.Comment, err error)
	DeleteComment(ctx context.Context, id string) (err error)
	DeleteCommentsByProductID(ctx context.Context, productID string) (err error)
}
