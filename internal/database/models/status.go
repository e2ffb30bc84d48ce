package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Status is a lookup entity describing where a suggestion sits in the
// approval workflow. Statuses are created rarely and never updated or
// deleted.
type Status struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"status_name"`
	Description string             `bson:"status_description,omitempty"`
}
