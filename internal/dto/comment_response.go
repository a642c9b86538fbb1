package dto

import "product-catalog-service/internal/domain"

type CommentResponse struct {
	MongoID     string `json:"_id"`
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func FromComment(comment domain.Comment) CommentResponse {
	id := comment.ID.Hex()
	return CommentResponse{
		MongoID:     id,
		ID:          id,
		ProductID:   comment.ProductID.Hex(),
		Description: comment.Description,
		Date:        comment.Date,
	}
}

// FromComments always returns a non-nil slice so an empty comment list
// serializes as [] rather than null.
func FromComments(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, FromComment(comment))
	}
	return out
}
