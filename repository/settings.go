package repository

import (
	"context"
	"errors"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for user settings
func GetSettingsRepo(client *mongo.Client) *SettingsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("SETTINGS_COLLECTION")
	return &SettingsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Retrieves the settings singleton for a user; nil when absent
func (r *SettingsRepo) GetUserSettings(ctx context.Context, userID string) (*model.UserSettings, error) {
	timer := utils.TrackDBOperation("find_one", "settings")
	defer timer.ObserveDuration()

	var settings model.UserSettings
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "settings_fetch_failed")
		return nil, err
	}
	return &settings, nil
}

// Persists a freshly synthesized settings document
func (r *SettingsRepo) CreateUserSettings(ctx context.Context, settings *model.UserSettings) error {
	timer := utils.TrackDBOperation("insert", "settings")
	defer timer.ObserveDuration()

	if settings.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, settings)
	if err != nil {
		utils.TrackError("database", "settings_creation_failed")
		return err
	}

	return nil
}

// Replaces the settings document, creating it if it vanished in between
func (r *SettingsRepo) UpdateUserSettings(ctx context.Context, settings *model.UserSettings) error {
	timer := utils.TrackDBOperation("update", "settings")
	defer timer.ObserveDuration()

	opts := options.Replace().SetUpsert(true)
	_, err := r.MongoCollection.ReplaceOne(ctx,
		bson.M{"user_id": settings.UserID}, settings, opts)
	if err != nil {
		utils.TrackError("database", "settings_update_failed")
		return err
	}

	return nil
}
