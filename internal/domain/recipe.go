package domain

import "time"

// Enumerations mirrored by the write-validation rules.
var (
	RecipeCategories   = []string{"Breakfast", "Lunch", "Dinner", "Snacks", "Dessert"}
	RecipeDifficulties = []string{"Easy", "Medium", "Hard"}
)

// NutritionalInfo is an optional sub-record; all fields numeric.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Recipe is stored one row per document; the list and sub-record fields
// are serialized into JSON columns so a write lands atomically.
type Recipe struct {
	ID                string           `gorm:"primaryKey;size:36" json:"_id"`
	Title             string           `gorm:"size:191;not null" json:"title"`
	Category          string           `gorm:"size:32;not null;index:idx_owner_category,priority:2" json:"category"`
	Difficulty        string           `gorm:"size:16;not null" json:"difficulty"`
	PrepTimeInMinutes int              `gorm:"not null" json:"prepTimeInMinutes"`
	CookTimeInMinutes int              `gorm:"not null" json:"cookTimeInMinutes"`
	Servings          int              `gorm:"not null" json:"servings"`
	Cuisine           string           `gorm:"size:64" json:"cuisine,omitempty"`
	Ingredients       []string         `gorm:"serializer:json;not null" json:"ingredients"`
	Instructions      []string         `gorm:"serializer:json;not null" json:"instructions"`
	Tags              []string         `gorm:"serializer:json" json:"tags,omitempty"`
	Notes             string           `gorm:"type:text" json:"notes,omitempty"`
	NutritionalInfo   *NutritionalInfo `gorm:"serializer:json" json:"nutritionalInfo,omitempty"`
	UserID            string           `gorm:"size:36;not null;index:idx_owner_category,priority:1" json:"userId"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

func (Recipe) TableName() string { return "recipes" }

// Sort directions for List, matching the store's 1/-1 convention.
const (
	SortTitleAsc  = 1
	SortTitleDesc = -1
)

type RecipeRepository interface {
	Create(r *Recipe) error
	// List returns every recipe ordered by title; order is SortTitleAsc
	// or SortTitleDesc.
	List(order int) ([]Recipe, error)
	FindByID(id string) (*Recipe, error)
	FindByOwnerAndCategory(userID, category string) ([]Recipe, error)
	// Replace overwrites the stored fields of the recipe with the given id.
	// Returns false when no such recipe exists.
	Replace(id string, r *Recipe) (bool, error)
	// Delete removes the recipe; false when it was already gone.
	Delete(id string) (bool, error)
}
