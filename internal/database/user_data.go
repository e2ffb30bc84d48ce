package database

import (
	"context"
	"fmt"

	"suggestion-app/internal/database/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserData implements UserData for MongoDB. All methods take the
// caller's context, so when the suggestion repository passes a session
// context the user reads and writes join its open transaction.
type MongoUserData struct {
	collection *mongo.Collection
}

// NewMongoUserData creates a new MongoDB user directory.
func NewMongoUserData(conn *DBConnection) *MongoUserData {
	return &MongoUserData{collection: conn.Users}
}

// GetUser returns a user by id. It returns ErrUserNotFound if no user
// matches the id.
func (d *MongoUserData) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := d.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", id.Hex(), err)
	}
	return &user, nil
}

// GetUserFromAuthentication returns the user mapped to an external
// authentication object identifier.
func (d *MongoUserData) GetUserFromAuthentication(ctx context.Context, objectIdentifier string) (*models.User, error) {
	var user models.User
	err := d.collection.FindOne(ctx, bson.M{"object_identifier": objectIdentifier}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by object identifier: %w", err)
	}
	return &user, nil
}

// GetUsers returns all users.
func (d *MongoUserData) GetUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := d.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// CreateUser inserts a new user record.
func (d *MongoUserData) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := d.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// UpdateUser fully replaces the user record matching by id.
func (d *MongoUserData) UpdateUser(ctx context.Context, user *models.User) error {
	result, err := d.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("failed to replace user %s: %w", user.ID.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
