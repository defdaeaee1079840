package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"main/model"
	"main/utils"
)

type CategoryService struct {
	categories CategoryStore
	todos      TodoStore
}

func NewCategoryService(categories CategoryStore, todos TodoStore) *CategoryService {
	return &CategoryService{categories: categories, todos: todos}
}

// Get the user's categories sorted by display order
func (svc *CategoryService) GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	categories, err := svc.categories.GetUserCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})

	return categories, nil
}

// Create Category. The new category is appended at the end of the display
// order. When isDefault is requested, every other category loses the flag in
// the same operation so at most one default survives.
func (svc *CategoryService) CreateCategory(ctx context.Context, userID, name, color string, isDefault bool) (*model.Category, error) {
	existing, err := svc.categories.GetUserCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(existing) >= model.MaxCategoriesPerUser {
		return nil, &LimitExceededError{
			Message: fmt.Sprintf("cannot have more than %d categories", model.MaxCategoriesPerUser),
		}
	}

	if err := validateCategoryName(existing, name, ""); err != nil {
		return nil, err
	}

	if color == "" {
		// No explicit color: take the first unused palette color
		available := availableColors(existing, model.DefaultPalette)
		if len(available) > 0 {
			color = available[0]
		} else {
			color = model.DefaultPalette[0]
		}
	} else if !utils.ValidateHexColor(color) {
		return nil, &ValidationError{Message: "category color must be a hex color string"}
	}

	now := time.Now()
	category := &model.Category{
		CategoryID: utils.NewID(),
		UserID:     userID,
		Name:       strings.TrimSpace(name),
		Color:      color,
		Order:      len(existing),
		IsDefault:  isDefault,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if isDefault {
		for _, other := range existing {
			if other.IsDefault {
				other.IsDefault = false
				other.UpdatedAt = now
				if err := svc.categories.UpdateCategory(ctx, other); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := svc.categories.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	utils.TrackCategoryOperation("create")
	return category, nil
}

// Update Category (rename, recolor, default flag)
func (svc *CategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, name, color *string, isDefault *bool) (*model.Category, error) {
	existing, err := svc.categories.GetUserCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	var target *model.Category
	for _, category := range existing {
		if category.CategoryID == categoryID {
			target = category
			break
		}
	}
	if target == nil {
		return nil, &NotFoundError{Message: "category not found"}
	}

	now := time.Now()

	if name != nil {
		if err := validateCategoryName(existing, *name, categoryID); err != nil {
			return nil, err
		}
		target.Name = strings.TrimSpace(*name)
	}
	if color != nil {
		if !utils.ValidateHexColor(*color) {
			return nil, &ValidationError{Message: "category color must be a hex color string"}
		}
		target.Color = *color
	}
	if isDefault != nil && *isDefault && !target.IsDefault {
		for _, other := range existing {
			if other.CategoryID != categoryID && other.IsDefault {
				other.IsDefault = false
				other.UpdatedAt = now
				if err := svc.categories.UpdateCategory(ctx, other); err != nil {
					return nil, err
				}
			}
		}
		target.IsDefault = true
	}

	target.UpdatedAt = now
	if err := svc.categories.UpdateCategory(ctx, target); err != nil {
		return nil, err
	}

	utils.TrackCategoryOperation("update")
	return target, nil
}

// Delete Category. A user always keeps at least one category, and a category
// referenced by todos cannot be removed. Orders of the survivors are
// compacted back to a dense 0..n-1 sequence.
func (svc *CategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) ([]*model.Category, error) {
	existing, err := svc.GetUserCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	var target *model.Category
	for _, category := range existing {
		if category.CategoryID == categoryID {
			target = category
			break
		}
	}
	if target == nil {
		return nil, &NotFoundError{Message: "category not found"}
	}

	if len(existing) <= 1 {
		return nil, &InvariantViolationError{Message: "cannot remove the last category"}
	}

	related, err := svc.todos.CountTodosByCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	if related > 0 {
		return nil, &InvariantViolationError{Message: "cannot remove a category that still has todos"}
	}

	if err := svc.categories.DeleteCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	// Compact orders above the removed slot
	remaining := make([]*model.Category, 0, len(existing)-1)
	compacted := make(map[string]int)
	for _, category := range existing {
		if category.CategoryID == categoryID {
			continue
		}
		if category.Order > target.Order {
			category.Order--
			compacted[category.CategoryID] = category.Order
		}
		remaining = append(remaining, category)
	}
	if len(compacted) > 0 {
		if _, err := svc.categories.BulkUpdateOrders(ctx, userID, compacted); err != nil {
			return nil, err
		}
	}

	utils.TrackCategoryOperation("delete")
	return remaining, nil
}

// Reorder Categories by an explicit id sequence. Listed ids take their
// position in the sequence; unlisted ids keep their relative order appended
// after the listed ones. An empty sequence is a no-op.
func (svc *CategoryService) ReorderCategories(ctx context.Context, userID string, orderedIDs []string) ([]*model.Category, int, error) {
	categories, err := svc.GetUserCategories(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	known := make(map[string]*model.Category, len(categories))
	for _, category := range categories {
		known[category.CategoryID] = category
	}
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, ok := known[id]; !ok {
			return nil, 0, &ValidationError{Message: "reorder list contains an unknown category id"}
		}
		// A repeated id would leave a hole in the 0..n-1 sequence
		if seen[id] {
			return nil, 0, &ValidationError{Message: "reorder list contains a duplicate category id"}
		}
		seen[id] = true
	}

	if len(orderedIDs) == 0 {
		return categories, 0, nil
	}

	changed := reorderAssignments(categories, orderedIDs)
	if len(changed) > 0 {
		if _, err := svc.categories.BulkUpdateOrders(ctx, userID, changed); err != nil {
			return nil, 0, err
		}
		now := time.Now()
		for id, order := range changed {
			known[id].Order = order
			known[id].UpdatedAt = now
		}
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})

	utils.TrackCategoryOperation("reorder")
	return categories, len(changed), nil
}

// Set Default Category. Unknown ids are a silent no-op; existence checks
// belong to the caller.
func (svc *CategoryService) SetDefaultCategory(ctx context.Context, userID, categoryID string) ([]*model.Category, error) {
	categories, err := svc.GetUserCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	var target *model.Category
	for _, category := range categories {
		if category.CategoryID == categoryID {
			target = category
			break
		}
	}
	if target == nil {
		return categories, nil
	}

	now := time.Now()
	for _, category := range categories {
		isDefault := category.CategoryID == categoryID
		if category.IsDefault == isDefault {
			continue
		}
		category.IsDefault = isDefault
		category.UpdatedAt = now
		if err := svc.categories.UpdateCategory(ctx, category); err != nil {
			return nil, err
		}
	}

	return categories, nil
}

// Available Colors: palette minus the colors already in use, palette order
func (svc *CategoryService) AvailableColors(ctx context.Context, userID string) ([]string, error) {
	categories, err := svc.categories.GetUserCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	return availableColors(categories, model.DefaultPalette), nil
}

// helper functions

func validateCategoryName(existing []*model.Category, name, selfID string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Message: "category name is required"}
	}
	if len([]rune(name)) > model.MaxCategoryNameLength {
		return &ValidationError{
			Message: fmt.Sprintf("category name cannot exceed %d characters", model.MaxCategoryNameLength),
		}
	}
	for _, category := range existing {
		if category.CategoryID == selfID {
			continue
		}
		if strings.EqualFold(category.Name, name) {
			return &ValidationError{Message: "category name already exists"}
		}
	}
	return nil
}

func availableColors(categories []*model.Category, palette []string) []string {
	used := make(map[string]bool, len(categories))
	for _, category := range categories {
		used[strings.ToLower(category.Color)] = true
	}

	available := make([]string, 0, len(palette))
	for _, color := range palette {
		if !used[strings.ToLower(color)] {
			available = append(available, color)
		}
	}
	return available
}

// reorderAssignments computes the new order for each category given an
// explicit id sequence. Categories must be sorted by their current order.
// Only changed assignments are returned.
func reorderAssignments(categories []*model.Category, orderedIDs []string) map[string]int {
	listed := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		listed[id] = true
	}

	changed := make(map[string]int)
	for index, id := range orderedIDs {
		for _, category := range categories {
			if category.CategoryID == id && category.Order != index {
				changed[id] = index
			}
		}
	}

	// Unlisted categories follow in their prior relative order
	next := len(orderedIDs)
	for _, category := range categories {
		if listed[category.CategoryID] {
			continue
		}
		if category.Order != next {
			changed[category.CategoryID] = next
		}
		next++
	}

	return changed
}
