package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an application user together with the denormalized
// summaries of the suggestions they authored or voted on. The summary lists
// are owned by the user directory but written in lockstep with suggestion
// writes inside the same transaction.
type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`
	// ObjectIdentifier is the external authentication id this user maps to.
	ObjectIdentifier    string            `bson:"object_identifier"`
	FirstName           string            `bson:"first_name,omitempty"`
	LastName            string            `bson:"last_name,omitempty"`
	DisplayName         string            `bson:"display_name"`
	Email               string            `bson:"email"`
	AuthoredSuggestions []BasicSuggestion `bson:"authored_suggestions,omitempty"`
	VotedOnSuggestions  []BasicSuggestion `bson:"voted_on_suggestions,omitempty"`
}

// BasicUser is the minimal author snapshot embedded in a suggestion.
type BasicUser struct {
	ID          primitive.ObjectID `bson:"_id"`
	DisplayName string             `bson:"display_name"`
}

// NewBasicUser builds the author snapshot embedded in suggestions.
func NewBasicUser(u *User) BasicUser {
	return BasicUser{ID: u.ID, DisplayName: u.DisplayName}
}

// HasVotedOn reports whether the user's voted-on list contains a summary
// for suggestionID.
func (u *User) HasVotedOn(suggestionID primitive.ObjectID) bool {
	for _, s := range u.VotedOnSuggestions {
		if s.ID == suggestionID {
			return true
		}
	}
	return false
}

// RemoveVotedOn removes the summary for suggestionID from the voted-on
// list. It reports whether a summary was present.
func (u *User) RemoveVotedOn(suggestionID primitive.ObjectID) bool {
	for i, s := range u.VotedOnSuggestions {
		if s.ID == suggestionID {
			u.VotedOnSuggestions = append(u.VotedOnSuggestions[:i], u.VotedOnSuggestions[i+1:]...)
			return true
		}
	}
	return false
}
