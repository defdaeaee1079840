package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TodosRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for todos
func GetTodosRepo(client *mongo.Client) *TodosRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("TODOS_COLLECTION")
	return &TodosRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new todo (following the model) into the database
func (r *TodosRepo) CreateTodo(ctx context.Context, todo *model.Todo) error {
	timer := utils.TrackDBOperation("insert", "todos")
	defer timer.ObserveDuration()

	if todo.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, todo)
	if err != nil {
		utils.TrackError("database", "todo_creation_failed")
		return err
	}

	return nil
}

// Retrieves all todos based on the User ID
func (r *TodosRepo) GetUserTodos(ctx context.Context, userID string) ([]*model.Todo, error) {
	timer := utils.TrackDBOperation("find", "todos")
	defer timer.ObserveDuration()

	var todos []*model.Todo
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &todos); err != nil {
		utils.TrackError("database", "todo_decode_failed")
		return nil, err
	}
	return todos, nil
}

// Retrieves a single todo scoped to the user; nil when absent
func (r *TodosRepo) GetTodoByID(ctx context.Context, userID, todoID string) (*model.Todo, error) {
	timer := utils.TrackDBOperation("find_one", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     todoID,
		"user_id": userID,
	}

	var todo model.Todo
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	return &todo, nil
}

// All encompassing update for a specific todo
func (r *TodosRepo) UpdateTodo(ctx context.Context, todo *model.Todo) error {
	timer := utils.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     todo.TodoID,
		"user_id": todo.UserID,
	}

	update := bson.M{
		"$set": bson.M{
			"title":       todo.Title,
			"date":        todo.Date,
			"completed":   todo.Completed,
			"todo_type":   todo.TodoType,
			"category_id": todo.CategoryID,
			"updated_at":  todo.UpdatedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "todo_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "todo_not_found")
		return errors.New("todo not found")
	}

	return nil
}

// Removes a specific todo from database
func (r *TodosRepo) DeleteTodo(ctx context.Context, userID, todoID string) error {
	timer := utils.TrackDBOperation("delete", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     todoID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "todo_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "todo_not_found")
		return errors.New("todo not found")
	}

	return nil
}

// Removes every todo the user owns, returning how many were deleted
func (r *TodosRepo) DeleteUserTodos(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("delete_many", "todos")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "todo_bulk_deletion_failed")
		return 0, err
	}

	return int(result.DeletedCount), nil
}

// Moves the listed todos to a new date. The user filter is the authorization
// boundary: ids owned by someone else simply do not match.
func (r *TodosRepo) UpdateTodoDates(ctx context.Context, userID string, ids []string, newDate time.Time) (int, error) {
	timer := utils.TrackDBOperation("update_many", "todos")
	defer timer.ObserveDuration()

	if len(ids) == 0 {
		return 0, nil
	}

	filter := bson.M{
		"_id":     bson.M{"$in": ids},
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"date":       newDate,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateMany(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "todo_move_failed")
		return 0, err
	}

	return int(result.ModifiedCount), nil
}

// Counts todos referencing a category, used to guard category deletion
func (r *TodosRepo) CountTodosByCategory(ctx context.Context, userID, categoryID string) (int, error) {
	timer := utils.TrackDBOperation("count", "todos")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID, "category_id": categoryID})
	if err != nil {
		utils.TrackError("database", "todo_count_failed")
		return 0, err
	}
	return int(count), nil
}
