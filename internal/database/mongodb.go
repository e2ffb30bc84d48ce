package database

import (
	"context"
	"fmt"
	"log"

	"suggestion-app/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DBConnection bundles the Mongo client with the collection handles the
// repositories work against. Collection names come from configuration so
// deployments can point the repositories at differently named collections.
type DBConnection struct {
	Client *mongo.Client
	DB     *mongo.Database

	Suggestions *mongo.Collection
	Users       *mongo.Collection
	Categories  *mongo.Collection
	Statuses    *mongo.Collection
}

// Connect establishes a connection to the MongoDB database using the provided
// configuration and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*DBConnection, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.MongoDBURI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Send a ping to confirm a successful connection
	var result bson.M
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Decode(&result); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	log.Println("Successfully connected and pinged MongoDB!")

	db := client.Database(cfg.MongoDBDatabase)

	return &DBConnection{
		Client:      client,
		DB:          db,
		Suggestions: db.Collection(cfg.SuggestionCollection),
		Users:       db.Collection(cfg.UserCollection),
		Categories:  db.Collection(cfg.CategoryCollection),
		Statuses:    db.Collection(cfg.StatusCollection),
	}, nil
}

// Disconnect closes the underlying client.
func (c *DBConnection) Disconnect(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the repositories rely on. Unique indexes
// on lookup names back the rule that categories and statuses are never
// duplicate-inserted; the archived index serves the active-set query.
func (c *DBConnection) EnsureIndexes(ctx context.Context) error {
	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{c.Categories, mongo.IndexModel{Keys: bson.D{{Key: "category_name", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{c.Statuses, mongo.IndexModel{Keys: bson.D{{Key: "status_name", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{c.Users, mongo.IndexModel{Keys: bson.D{{Key: "object_identifier", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{c.Suggestions, mongo.IndexModel{Keys: bson.D{{Key: "archived", Value: 1}}}},
	}

	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.coll.Name(), err)
		}
	}
	return nil
}
