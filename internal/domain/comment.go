package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Comment is a top-level document referencing its product, not an embedded
// subdocument. The date field is a caller-supplied display string.
type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ProductID   primitive.ObjectID `bson:"productId"`
	Description string             `bson:"description"`
	Date        string             `bson:"date"`
}
