package database

import (
	"context"
	"fmt"
	"time"

	"suggestion-app/internal/cache"
	"suggestion-app/internal/database/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// suggestionCacheName keys the cached active (non-archived) suggestion
	// set. The TTL is short because this set changes frequently; a freshly
	// created suggestion may stay invisible in listings for up to the TTL.
	suggestionCacheName = "SuggestionData"
	suggestionCacheTTL  = time.Minute
)

// MongoSuggestionData implements SuggestionData. It owns the canonical
// suggestion records and keeps the denormalized summaries on user records in
// sync by co-writing them inside the same transaction.
type MongoSuggestionData struct {
	store    SuggestionStore
	userData UserData
	tx       TxRunner
	cache    cache.Cache
}

// NewMongoSuggestionData creates the suggestion repository over a Mongo
// connection. The user directory must target the same backing store so its
// reads and writes can join the suggestion transactions.
func NewMongoSuggestionData(conn *DBConnection, userData UserData, c cache.Cache) *MongoSuggestionData {
	return &MongoSuggestionData{
		store:    NewMongoSuggestionStore(conn.Suggestions),
		userData: userData,
		tx:       NewSessionTxRunner(conn.Client),
		cache:    c,
	}
}

// GetAllSuggestions returns every non-archived suggestion. The result is
// served from the cache when present and repopulated from the store on a
// miss. Callers receive a copy, so mutating the result cannot corrupt the
// cached set.
func (d *MongoSuggestionData) GetAllSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	if v, ok := d.cache.Get(suggestionCacheName); ok {
		if suggestions, ok := v.([]models.Suggestion); ok {
			return copySuggestions(suggestions), nil
		}
	}

	suggestions, err := d.store.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	d.cache.Set(suggestionCacheName, suggestions, suggestionCacheTTL)

	return copySuggestions(suggestions), nil
}

// GetAllApprovedSuggestions returns the non-archived suggestions approved
// for release. It filters the cached set and never queries the store
// directly.
func (d *MongoSuggestionData) GetAllApprovedSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	suggestions, err := d.GetAllSuggestions(ctx)
	if err != nil {
		return nil, err
	}

	approved := make([]models.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.ApprovedForRelease {
			approved = append(approved, s)
		}
	}
	return approved, nil
}

// GetSuggestionsWaitingForApproval returns the non-archived suggestions
// that are neither approved nor rejected, filtered from the cached set.
func (d *MongoSuggestionData) GetSuggestionsWaitingForApproval(ctx context.Context) ([]models.Suggestion, error) {
	suggestions, err := d.GetAllSuggestions(ctx)
	if err != nil {
		return nil, err
	}

	waiting := make([]models.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if !s.ApprovedForRelease && !s.Rejected {
			waiting = append(waiting, s)
		}
	}
	return waiting, nil
}

// GetUserSuggestions returns the suggestions authored by userID. Per-user
// listings are infrequent compared to the bulk views, so this queries the
// store directly instead of going through the cache.
func (d *MongoSuggestionData) GetUserSuggestions(ctx context.Context, userID primitive.ObjectID) ([]models.Suggestion, error) {
	return d.store.FindByAuthor(ctx, userID)
}

// GetSuggestion returns a single suggestion by id, or ErrSuggestionNotFound.
// It bypasses the cache: a point lookup is cheaper than materializing and
// filtering the full cached set.
func (d *MongoSuggestionData) GetSuggestion(ctx context.Context, id primitive.ObjectID) (*models.Suggestion, error) {
	return d.store.FindByID(ctx, id)
}

// CreateSuggestion inserts the new suggestion and appends an authored
// summary to the author's user record. Both writes happen in one
// transaction: if either fails, neither is visible. The active-set cache is
// deliberately not invalidated; the TTL is the accepted staleness bound for
// new suggestions.
func (d *MongoSuggestionData) CreateSuggestion(ctx context.Context, suggestion *models.Suggestion) error {
	if err := suggestion.Validate(); err != nil {
		return err
	}
	suggestion.ID = primitive.NewObjectID()
	suggestion.CreatedAt = time.Now().UTC()

	return d.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := d.store.Insert(ctx, suggestion); err != nil {
			return err
		}

		user, err := d.userData.GetUser(ctx, suggestion.Author.ID)
		if err != nil {
			return err
		}
		user.AuthoredSuggestions = append(user.AuthoredSuggestions, models.NewBasicSuggestion(suggestion))
		return d.userData.UpdateUser(ctx, user)
	})
}

// UpdateSuggestion fully replaces the record matching the suggestion's id
// and invalidates the active-set cache. A full replace can flip a
// suggestion's listing membership (approval, archival), so the cache must
// not serve the stale classification.
func (d *MongoSuggestionData) UpdateSuggestion(ctx context.Context, suggestion *models.Suggestion) error {
	if err := d.store.Replace(ctx, suggestion); err != nil {
		return err
	}
	d.cache.Remove(suggestionCacheName)
	return nil
}

// UpvoteSuggestion toggles userID's vote on a suggestion. Whether the call
// is an upvote or an un-vote is decided solely by the vote set: if the id is
// absent it is added and a summary is appended to the user's voted-on list;
// if present both are removed. The suggestion and user writes share one
// transaction, and the cache is invalidated only after a successful commit.
//
// A vote on a nonexistent suggestion is a data error: the lookup fails with
// ErrSuggestionNotFound, which aborts the transaction.
func (d *MongoSuggestionData) UpvoteSuggestion(ctx context.Context, suggestionID, userID primitive.ObjectID) error {
	err := d.tx.WithTransaction(ctx, func(ctx context.Context) error {
		suggestion, err := d.store.FindByID(ctx, suggestionID)
		if err != nil {
			return err
		}

		isUpvote := suggestion.AddVote(userID)
		if !isUpvote {
			suggestion.RemoveVote(userID)
		}
		if err := d.store.Replace(ctx, suggestion); err != nil {
			return err
		}

		user, err := d.userData.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		if isUpvote {
			user.VotedOnSuggestions = append(user.VotedOnSuggestions, models.NewBasicSuggestion(suggestion))
		} else if !user.RemoveVotedOn(suggestionID) {
			// The vote set and the user's mirror must agree; a missing
			// summary on un-vote means the pair diverged.
			return fmt.Errorf("user %s has no voted-on entry for suggestion %s", userID.Hex(), suggestionID.Hex())
		}
		return d.userData.UpdateUser(ctx, user)
	})
	if err != nil {
		return err
	}

	d.cache.Remove(suggestionCacheName)
	return nil
}

// copySuggestions returns a fresh slice so cache consumers cannot mutate the
// cached entries in place. The vote sets are copied per element; a plain
// slice copy would still share their backing arrays with the cache.
func copySuggestions(suggestions []models.Suggestion) []models.Suggestion {
	out := make([]models.Suggestion, len(suggestions))
	copy(out, suggestions)
	for i := range out {
		out[i].UserVotes = append([]primitive.ObjectID(nil), out[i].UserVotes...)
	}
	return out
}
