package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxTitleLength       = 75
	maxDescriptionLength = 500
)

// Suggestion is the canonical suggestion document. Category, Author and
// Status are embedded snapshots taken at creation time, not live references;
// they are intentionally never re-resolved if the source record changes.
type Suggestion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	Category    Category           `bson:"category"`
	Author      BasicUser          `bson:"author"`
	// UserVotes holds the ids of users who upvoted. Set semantics: no
	// duplicates, insertion order irrelevant. Mutate only through AddVote
	// and RemoveVote.
	UserVotes          []primitive.ObjectID `bson:"user_votes,omitempty"`
	Status             Status               `bson:"status,omitempty"`
	OwnerNotes         string               `bson:"owner_notes,omitempty"`
	ApprovedForRelease bool                 `bson:"approved_for_release"`
	Archived           bool                 `bson:"archived"`
	Rejected           bool                 `bson:"rejected"`
}

// BasicSuggestion is the denormalized summary of a suggestion stored on a
// user document. It is written only as a side effect of suggestion
// transactions and never mutated independently.
type BasicSuggestion struct {
	ID    primitive.ObjectID `bson:"_id"`
	Title string             `bson:"title"`
}

// NewBasicSuggestion builds the summary mirrored onto user documents.
func NewBasicSuggestion(s *Suggestion) BasicSuggestion {
	return BasicSuggestion{ID: s.ID, Title: s.Title}
}

// HasVote reports whether userID is present in the vote set.
func (s *Suggestion) HasVote(userID primitive.ObjectID) bool {
	for _, id := range s.UserVotes {
		if id == userID {
			return true
		}
	}
	return false
}

// AddVote adds userID to the vote set. It reports whether the id was
// actually added; adding an id that is already present is a no-op and
// returns false.
func (s *Suggestion) AddVote(userID primitive.ObjectID) bool {
	if s.HasVote(userID) {
		return false
	}
	s.UserVotes = append(s.UserVotes, userID)
	return true
}

// RemoveVote removes userID from the vote set. It reports whether the id
// was present.
func (s *Suggestion) RemoveVote(userID primitive.ObjectID) bool {
	for i, id := range s.UserVotes {
		if id == userID {
			s.UserVotes = append(s.UserVotes[:i], s.UserVotes[i+1:]...)
			return true
		}
	}
	return false
}

// Validate checks the fields a user-submitted suggestion must carry before
// it is persisted.
func (s *Suggestion) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("suggestion title is required")
	}
	if len(s.Title) > maxTitleLength {
		return fmt.Errorf("suggestion title exceeds %d characters", maxTitleLength)
	}
	if len(s.Description) > maxDescriptionLength {
		return fmt.Errorf("suggestion description exceeds %d characters", maxDescriptionLength)
	}
	if s.Category.ID.IsZero() {
		return fmt.Errorf("suggestion category is required")
	}
	if s.Author.ID.IsZero() {
		return fmt.Errorf("suggestion author is required")
	}
	return nil
}
