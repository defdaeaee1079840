package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	todosCollection := db.Collection(os.Getenv("TODOS_COLLECTION"))
	categoriesCollection := db.Collection(os.Getenv("CATEGORIES_COLLECTION"))
	settingsCollection := db.Collection(os.Getenv("SETTINGS_COLLECTION"))

	todoIndexes := []mongo.IndexModel{
		// Calendar views pull a user's todos by date range
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: -1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_todos_date").
				SetUnique(false),
		},
		// Category deletion guard counts referencing todos
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "category_id", Value: 1},
			},
			Options: options.Index().
				SetName("user_todos_category"),
		},
		// Rollover scan for incomplete tasks
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "todo_type", Value: 1},
				{Key: "completed", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetName("user_due_tasks"),
		},
	}

	categoryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "order", Value: 1},
			},
			Options: options.Index().
				SetName("user_categories_order").
				SetUnique(false),
		},
	}

	settingsIndexes := []mongo.IndexModel{
		// One settings document per user
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_settings").
				SetUnique(true),
		},
	}

	_, err := todosCollection.Indexes().CreateMany(ctx, todoIndexes)
	if err != nil {
		return fmt.Errorf("failed to create todos indexes: %w", err)
	}

	_, err = categoriesCollection.Indexes().CreateMany(ctx, categoryIndexes)
	if err != nil {
		return fmt.Errorf("failed to create categories indexes: %w", err)
	}

	_, err = settingsCollection.Indexes().CreateMany(ctx, settingsIndexes)
	if err != nil {
		return fmt.Errorf("failed to create settings indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
