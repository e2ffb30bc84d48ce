package database

import (
	"context"
	"fmt"

	"suggestion-app/internal/database/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SuggestionStore abstracts the suggestion collection primitives consumed by
// MongoSuggestionData. The mongo implementation joins an open transaction
// whenever ctx is a session context, so the same primitives serve both plain
// reads and transactional read-modify-write sequences.
type SuggestionStore interface {
	// FindActive returns all suggestions with archived == false.
	FindActive(ctx context.Context) ([]models.Suggestion, error)
	// FindByAuthor returns all suggestions authored by authorID.
	FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Suggestion, error)
	// FindByID returns the suggestion matching id, or ErrSuggestionNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Suggestion, error)
	// Insert adds a new suggestion document.
	Insert(ctx context.Context, suggestion *models.Suggestion) error
	// Replace fully replaces the document matching the suggestion's id.
	Replace(ctx context.Context, suggestion *models.Suggestion) error
}

// TxRunner executes a function inside a multi-document transaction. On any
// error from fn the transaction is aborted and fn's error is returned to the
// caller unchanged; commit only happens when fn succeeds.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type mongoSuggestionStore struct {
	collection *mongo.Collection
}

// NewMongoSuggestionStore creates a SuggestionStore over a Mongo collection.
func NewMongoSuggestionStore(collection *mongo.Collection) SuggestionStore {
	return &mongoSuggestionStore{collection: collection}
}

func (s *mongoSuggestionStore) FindActive(ctx context.Context) ([]models.Suggestion, error) {
	return s.find(ctx, bson.M{"archived": false})
}

func (s *mongoSuggestionStore) FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Suggestion, error) {
	return s.find(ctx, bson.M{"author._id": authorID})
}

func (s *mongoSuggestionStore) find(ctx context.Context, filter bson.M) ([]models.Suggestion, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find suggestions: %w", err)
	}
	defer cursor.Close(ctx)

	var suggestions []models.Suggestion
	if err = cursor.All(ctx, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	return suggestions, nil
}

func (s *mongoSuggestionStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&suggestion)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("failed to find suggestion by ID %s: %w", id.Hex(), err)
	}
	return &suggestion, nil
}

func (s *mongoSuggestionStore) Insert(ctx context.Context, suggestion *models.Suggestion) error {
	if _, err := s.collection.InsertOne(ctx, suggestion); err != nil {
		return fmt.Errorf("failed to insert suggestion: %w", err)
	}
	return nil
}

func (s *mongoSuggestionStore) Replace(ctx context.Context, suggestion *models.Suggestion) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": suggestion.ID}, suggestion)
	if err != nil {
		return fmt.Errorf("failed to replace suggestion %s: %w", suggestion.ID.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return ErrSuggestionNotFound
	}
	return nil
}

type sessionTxRunner struct {
	client *mongo.Client
}

// NewSessionTxRunner creates a TxRunner backed by Mongo sessions.
func NewSessionTxRunner(client *mongo.Client) TxRunner {
	return &sessionTxRunner{client: client}
}

// WithTransaction runs fn inside a session transaction. fn receives a session
// context; every collection operation invoked with it becomes part of the
// transaction. The original error from fn is re-signaled unchanged after an
// abort so callers never see a wrapped or masked failure.
func (r *sessionTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	return mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		if err := session.StartTransaction(); err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		if err := fn(sc); err != nil {
			_ = session.AbortTransaction(sc)
			return err
		}
		return session.CommitTransaction(sc)
	})
}
