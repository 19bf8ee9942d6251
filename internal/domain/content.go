package domain

import "time"

// BlogPost is one published post as written to blog-posts.json.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Date        string    `json:"date"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	ReadTime    int       `json:"readTime"`
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Recipe is one published recipe as written to recipes.json, with its
// junction-table ingredients already resolved.
type Recipe struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	PrepTime    int                `json:"prepTime"`
	CookTime    int                `json:"cookTime"`
	TotalTime   int                `json:"totalTime"`
	OvenTemp    *int               `json:"ovenTemp,omitempty"`
	Category    string             `json:"category"`
	Difficulty  string             `json:"difficulty"`
	Servings    int                `json:"servings"`
	Tags        []string           `json:"tags"`
	Favorite    bool               `json:"favorite"`
	Content     string             `json:"content"`
	Ingredients []IngredientDisplay `json:"ingredients"`
	HeroImage   string             `json:"heroImage,omitempty"`
	LastUpdated time.Time          `json:"lastUpdated"`
}

// Ingredient is one entry of the ingredient reference database.
type Ingredient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Brand       string `json:"brand,omitempty"`
	InPantry    bool   `json:"inPantry"`
}

// RecipeIngredient is one junction entry relating a recipe to an ingredient
// with recipe-specific metadata.
type RecipeIngredient struct {
	ID           string   `json:"id"`
	RecipeID     string   `json:"recipeId"`
	IngredientID string   `json:"ingredientId"`
	Quantity     *float64 `json:"quantity,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	Purpose      string   `json:"purpose,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	Optional     bool     `json:"optional"`
	Display      string   `json:"display,omitempty"`
}

// IngredientDisplay is the flattened, recipe-scoped merge of a junction entry
// and its resolved ingredient.
type IngredientDisplay struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Quantity     *float64 `json:"quantity,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	Description  string   `json:"description,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	Purpose      string   `json:"purpose,omitempty"`
	Optional     bool     `json:"optional"`
	InPantry     bool     `json:"inPantry"`
	Display      string   `json:"display,omitempty"`
}

// Page is a standalone informational page (meal-prep.json).
type Page struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	LastUpdated time.Time `json:"lastUpdated,omitempty"`
}

// Metadata summarizes one pipeline run (metadata.json).
type Metadata struct {
	LastFetched          time.Time `json:"lastFetched"`
	BlogPostCount        int       `json:"blogPostCount"`
	RecipeCount          int       `json:"recipeCount"`
	IngredientCount      int       `json:"ingredientCount"`
	RecipeIngredientCount int      `json:"recipeIngredientCount"`
	TotalItems           int       `json:"totalItems"`
	HasIngredients       bool      `json:"hasIngredients"`
	HasMealPrep          bool      `json:"hasMealPrep"`
}

// Bundle holds everything one run produces, handed to the artifact writer as
// a unit.
type Bundle struct {
	BlogPosts         []BlogPost
	Recipes           []Recipe
	Ingredients       []Ingredient
	RecipeIngredients []RecipeIngredient
	MealPrep          Page
	Metadata          Metadata

	// WriteReferenceData controls whether ingredients.json and
	// recipe-ingredients.json are emitted; they exist only when the optional
	// reference databases are configured.
	WriteReferenceData bool
}
