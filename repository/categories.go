package repository

import (
	"context"
	"errors"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoriesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for categories
func GetCategoriesRepo(client *mongo.Client) *CategoriesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("CATEGORIES_COLLECTION")
	return &CategoriesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new category into the database
func (r *CategoriesRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	if category.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, category)
	if err != nil {
		utils.TrackError("database", "category_creation_failed")
		return err
	}

	return nil
}

// Retrieves all categories based on the User ID
func (r *CategoriesRepo) GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var categories []*model.Category
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "category_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &categories); err != nil {
		utils.TrackError("database", "category_decode_failed")
		return nil, err
	}
	return categories, nil
}

// Retrieves a single category scoped to the user; nil when absent
func (r *CategoriesRepo) GetCategoryByID(ctx context.Context, userID, categoryID string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find_one", "categories")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     categoryID,
		"user_id": userID,
	}

	var category model.Category
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "category_fetch_failed")
		return nil, err
	}
	return &category, nil
}

// Updates the mutable fields of a category
func (r *CategoriesRepo) UpdateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("update", "categories")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     category.CategoryID,
		"user_id": category.UserID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":       category.Name,
			"color":      category.Color,
			"order":      category.Order,
			"is_default": category.IsDefault,
			"updated_at": category.UpdatedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "category_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "category_not_found")
		return errors.New("category not found")
	}

	return nil
}

// Removes a specific category from database
func (r *CategoriesRepo) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	timer := utils.TrackDBOperation("delete", "categories")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     categoryID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "category_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "category_not_found")
		return errors.New("category not found")
	}

	return nil
}

// Rewrites display orders for the given category IDs in one bulk write
func (r *CategoriesRepo) BulkUpdateOrders(ctx context.Context, userID string, orders map[string]int) (int, error) {
	timer := utils.TrackDBOperation("bulk_update", "categories")
	defer timer.ObserveDuration()

	if len(orders) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(orders))
	for categoryID, order := range orders {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": categoryID, "user_id": userID}).
			SetUpdate(bson.M{"$set": bson.M{"order": order}}))
	}

	result, err := r.MongoCollection.BulkWrite(ctx, models)
	if err != nil {
		utils.TrackError("database", "category_reorder_failed")
		return 0, err
	}

	return int(result.ModifiedCount), nil
}
