package database

import (
	"context"
	"errors"
	"testing"

	"suggestion-app/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// countingLookupBackend fakes the load/insert pair behind lookupData.
type countingLookupBackend struct {
	categories []models.Category

	loadCalls   int
	insertCalls int

	failInsert error
}

func (b *countingLookupBackend) load(_ context.Context) ([]models.Category, error) {
	b.loadCalls++
	return append([]models.Category(nil), b.categories...), nil
}

func (b *countingLookupBackend) insert(_ context.Context, category models.Category) error {
	b.insertCalls++
	if b.failInsert != nil {
		return b.failInsert
	}
	b.categories = append(b.categories, category)
	return nil
}

func newLookupUnderTest(backend *countingLookupBackend) (*lookupData[models.Category], *fakeCache) {
	c := newFakeCache()
	return &lookupData[models.Category]{
		cache:     c,
		cacheName: "CategoryData",
		load:      backend.load,
		insert:    backend.insert,
	}, c
}

func TestLookupGetAllIsReadThrough(t *testing.T) {
	backend := &countingLookupBackend{categories: []models.Category{
		{ID: primitive.NewObjectID(), Name: "Courses"},
		{ID: primitive.NewObjectID(), Name: "Other"},
	}}
	lookup, _ := newLookupUnderTest(backend)
	ctx := context.Background()

	first, err := lookup.getAll(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, backend.loadCalls)

	// Cache hit: the backing store is not touched again.
	second, err := lookup.getAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, backend.loadCalls)
}

func TestLookupCreateDoesNotInvalidate(t *testing.T) {
	backend := &countingLookupBackend{categories: []models.Category{
		{ID: primitive.NewObjectID(), Name: "Courses"},
	}}
	lookup, c := newLookupUnderTest(backend)
	ctx := context.Background()

	before, err := lookup.getAll(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	require.NoError(t, lookup.create(ctx, models.Category{Name: "Other"}))
	assert.Equal(t, 1, backend.insertCalls)
	assert.Empty(t, c.removed)

	// The stale cached listing is served until the entry expires.
	after, err := lookup.getAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 1, backend.loadCalls)

	// Once the cache entry is gone the new item shows up.
	c.Remove("CategoryData")
	refreshed, err := lookup.getAll(ctx)
	require.NoError(t, err)
	assert.Len(t, refreshed, 2)
}

func TestLookupGetAllReturnsCopy(t *testing.T) {
	backend := &countingLookupBackend{categories: []models.Category{
		{ID: primitive.NewObjectID(), Name: "Courses"},
	}}
	lookup, _ := newLookupUnderTest(backend)
	ctx := context.Background()

	result, err := lookup.getAll(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)

	result[0].Name = "mutated by caller"

	again, err := lookup.getAll(ctx)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "Courses", again[0].Name, "callers must not be able to corrupt the cached listing")
	assert.Equal(t, 1, backend.loadCalls)
}

func TestLookupCreateWriteFailure(t *testing.T) {
	backend := &countingLookupBackend{}
	lookup, _ := newLookupUnderTest(backend)

	writeErr := errors.New("insert failed")
	backend.failInsert = writeErr

	err := lookup.create(context.Background(), models.Category{Name: "Other"})
	assert.ErrorIs(t, err, writeErr)
}
