package model

import "time"

const (
	// MaxCategoriesPerUser caps how many categories a single user may own.
	MaxCategoriesPerUser = 10

	// MaxCategoryNameLength is the display-name limit enforced on create/rename.
	MaxCategoryNameLength = 20
)

// DefaultPalette is the fixed set of colors offered when creating a category.
// Available colors are the palette minus colors already in use, in palette order.
var DefaultPalette = []string{
	"#f87171", // red
	"#fb923c", // orange
	"#fbbf24", // amber
	"#4ade80", // green
	"#2dd4bf", // teal
	"#60a5fa", // blue
	"#818cf8", // indigo
	"#c084fc", // purple
	"#f472b6", // pink
	"#94a3b8", // slate
}

type Category struct {
	CategoryID string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Name       string    `bson:"name" json:"name" binding:"required"`
	Color      string    `bson:"color" json:"color"`
	Order      int       `bson:"order" json:"order"`
	IsDefault  bool      `bson:"is_default" json:"is_default"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
