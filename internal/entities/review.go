package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a document in the reviews collection. BookID references a catalog
// book by its integer id, but nothing enforces that: the two stores are
// independently authoritative and a review may outlive (or predate) its book.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookID     int                `bson:"book_id" json:"book_id"`
	Username   string             `bson:"username" json:"username"`
	Rating     *int               `bson:"rating" json:"rating"`
	ReviewText *string            `bson:"review_text" json:"review_text"`
	ReviewDate *time.Time         `bson:"review_date" json:"review_date"`
}
