package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a lookup entity for grouping suggestions. Categories are
// created rarely and never updated or deleted.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"category_name"`
	Description string             `bson:"category_description,omitempty"`
}
