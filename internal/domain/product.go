package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Size struct {
	Width  float64 `bson:"width"`
	Height float64 `bson:"height"`
}

type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	ImageURL  string             `bson:"imageUrl"`
	Count     int64              `bson:"count"`
	Size      Size               `bson:"size"`
	Weight    string             `bson:"weight"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
