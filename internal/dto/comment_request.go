package dto

// CommentRequest's date is the display timestamp the client already formatted;
// the server stores it verbatim and never generates one.
type CommentRequest struct {
	ProductID   string `json:"productId" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
}
