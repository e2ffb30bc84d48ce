package database

import (
	"context"

	"suggestion-app/internal/database/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuggestionData defines the interface for suggestion data operations.
type SuggestionData interface {
	// GetAllSuggestions returns every non-archived suggestion, served from
	// a short-lived cache.
	GetAllSuggestions(ctx context.Context) ([]models.Suggestion, error)
	// GetAllApprovedSuggestions returns the non-archived suggestions that
	// are approved for release.
	GetAllApprovedSuggestions(ctx context.Context) ([]models.Suggestion, error)
	// GetSuggestionsWaitingForApproval returns the non-archived suggestions
	// that are neither approved nor rejected.
	GetSuggestionsWaitingForApproval(ctx context.Context) ([]models.Suggestion, error)
	// GetUserSuggestions returns the suggestions authored by userID.
	GetUserSuggestions(ctx context.Context, userID primitive.ObjectID) ([]models.Suggestion, error)
	// GetSuggestion returns a single suggestion by id. It returns
	// ErrSuggestionNotFound if no suggestion matches.
	GetSuggestion(ctx context.Context, id primitive.ObjectID) (*models.Suggestion, error)
	// CreateSuggestion inserts a new suggestion and appends an authored
	// summary to the author's user record in one transaction.
	CreateSuggestion(ctx context.Context, suggestion *models.Suggestion) error
	// UpdateSuggestion fully replaces the suggestion matching by id.
	UpdateSuggestion(ctx context.Context, suggestion *models.Suggestion) error
	// UpvoteSuggestion toggles userID's vote on the suggestion and keeps the
	// user's voted-on summary list in sync, in one transaction.
	UpvoteSuggestion(ctx context.Context, suggestionID, userID primitive.ObjectID) error
}

// CategoryData defines the interface for category lookup operations.
type CategoryData interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
}

// StatusData defines the interface for status lookup operations.
type StatusData interface {
	GetAllStatuses(ctx context.Context) ([]models.Status, error)
	CreateStatus(ctx context.Context, status *models.Status) error
}

// UserData defines the interface for the user directory. GetUser and
// UpdateUser must work with a session context so the suggestion
// transactions can call them against the same backing store.
type UserData interface {
	// GetUser returns a user by id. It returns ErrUserNotFound if the id is
	// unknown.
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// GetUserFromAuthentication returns the user mapped to an external
	// authentication object identifier.
	GetUserFromAuthentication(ctx context.Context, objectIdentifier string) (*models.User, error)
	// GetUsers returns all users.
	GetUsers(ctx context.Context) ([]models.User, error)
	// CreateUser inserts a new user record.
	CreateUser(ctx context.Context, user *models.User) error
	// UpdateUser fully replaces the user record matching by id.
	UpdateUser(ctx context.Context, user *models.User) error
}
