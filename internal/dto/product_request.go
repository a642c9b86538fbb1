package dto

// SizeRequest must be supplied as a whole; partial sizes are rejected.
type SizeRequest struct {
	Width  *float64 `json:"width" validate:"required,gt=0"`
	Height *float64 `json:"height" validate:"required,gt=0"`
}

type ProductRequest struct {
	Name     string       `json:"name" validate:"required"`
	ImageURL string       `json:"imageUrl" validate:"required"`
	Count    *int64       `json:"count" validate:"required,gte=0"`
	Size     *SizeRequest `json:"size" validate:"required"`
	Weight   string       `json:"weight" validate:"required"`
}

// UpdateProductRequest carries only the fields the caller wants to change.
// Nil means "leave as is". A supplied size replaces the stored size wholesale.
type UpdateProductRequest struct {
	Name     *string      `json:"name"`
	ImageURL *string      `json:"imageUrl"`
	Count    *int64       `json:"count"`
	Size     *SizeRequest `json:"size"`
	Weight   *string      `json:"weight"`
}
