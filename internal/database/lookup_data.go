package database

import (
	"context"
	"fmt"
	"time"

	"suggestion-app/internal/cache"
	"suggestion-app/internal/database/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// lookupCacheTTL is the time-to-live for the category and status caches.
// This data changes rarely, so a long window is fine; a newly created entry
// becomes visible in listings once the cache entry expires.
const lookupCacheTTL = 24 * time.Hour

// lookupData is the shared read-through cache pattern for small,
// rarely-changing lookup collections. Load and insert are injected so the
// pattern is independent of the backing collection and fakeable in tests.
type lookupData[T any] struct {
	cache     cache.Cache
	cacheName string
	load      func(ctx context.Context) ([]T, error)
	insert    func(ctx context.Context, item T) error
}

// getAll returns the full collection. On a cache miss it loads from the
// backing store and caches the result; on a hit the store is not touched.
// Callers receive a copy so the cached listing cannot be mutated in place.
func (d *lookupData[T]) getAll(ctx context.Context) ([]T, error) {
	if v, ok := d.cache.Get(d.cacheName); ok {
		if items, ok := v.([]T); ok {
			return append([]T(nil), items...), nil
		}
	}

	items, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	d.cache.Set(d.cacheName, items, lookupCacheTTL)
	return append([]T(nil), items...), nil
}

// create writes through to the backing store. It does not invalidate the
// cache; the new item shows up when the cached entry expires.
func (d *lookupData[T]) create(ctx context.Context, item T) error {
	return d.insert(ctx, item)
}

// MongoCategoryData implements CategoryData with a 24h read-through cache.
type MongoCategoryData struct {
	lookup lookupData[models.Category]
}

// NewMongoCategoryData creates the category repository.
func NewMongoCategoryData(conn *DBConnection, c cache.Cache) *MongoCategoryData {
	return &MongoCategoryData{
		lookup: lookupData[models.Category]{
			cache:     c,
			cacheName: "CategoryData",
			load: func(ctx context.Context) ([]models.Category, error) {
				return findAllLookup[models.Category](ctx, conn.Categories)
			},
			insert: func(ctx context.Context, category models.Category) error {
				return insertLookup(ctx, conn.Categories, category)
			},
		},
	}
}

func (d *MongoCategoryData) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return d.lookup.getAll(ctx)
}

func (d *MongoCategoryData) CreateCategory(ctx context.Context, category *models.Category) error {
	return d.lookup.create(ctx, *category)
}

// MongoStatusData implements StatusData with a 24h read-through cache.
type MongoStatusData struct {
	lookup lookupData[models.Status]
}

// NewMongoStatusData creates the status repository.
func NewMongoStatusData(conn *DBConnection, c cache.Cache) *MongoStatusData {
	return &MongoStatusData{
		lookup: lookupData[models.Status]{
			cache:     c,
			cacheName: "StatusData",
			load: func(ctx context.Context) ([]models.Status, error) {
				return findAllLookup[models.Status](ctx, conn.Statuses)
			},
			insert: func(ctx context.Context, status models.Status) error {
				return insertLookup(ctx, conn.Statuses, status)
			},
		},
	}
}

func (d *MongoStatusData) GetAllStatuses(ctx context.Context) ([]models.Status, error) {
	return d.lookup.getAll(ctx)
}

func (d *MongoStatusData) CreateStatus(ctx context.Context, status *models.Status) error {
	return d.lookup.create(ctx, *status)
}

func findAllLookup[T any](ctx context.Context, collection *mongo.Collection) ([]T, error) {
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find documents in %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	var items []T
	if err = cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode documents from %s: %w", collection.Name(), err)
	}
	return items, nil
}

func insertLookup[T any](ctx context.Context, collection *mongo.Collection, item T) error {
	if _, err := collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert document into %s: %w", collection.Name(), err)
	}
	return nil
}
