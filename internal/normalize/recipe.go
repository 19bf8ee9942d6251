package normalize

import (
	"content_fetcher/internal/domain"
	"content_fetcher/internal/source/notion"
)

// RecipeRecord is a normalized recipe plus the raw-record details the
// pipeline still has to act on: the junction identifiers to resolve and the
// remote hero image to localize.
type RecipeRecord struct {
	Recipe      domain.Recipe
	JunctionIDs []string
	HeroURL     string
}

// Recipe maps a raw recipe record onto the output schema.
func Recipe(p notion.Page) RecipeRecord {
	name := TitleText(p, "Name")
	prepTime := IntOr(p, "PrepTime", 0)
	cookTime := IntOr(p, "CookTime", 0)

	var ovenTemp *int
	if n := NumberValue(p, "OvenTemp (F)"); n != nil {
		t := int(*n)
		ovenTemp = &t
	}

	return RecipeRecord{
		Recipe: domain.Recipe{
			ID:          p.ID,
			Name:        name,
			Slug:        Slugify(name),
			Description: RichTextValue(p, "Description"),
			PrepTime:    prepTime,
			CookTime:    cookTime,
			TotalTime:   prepTime + cookTime,
			OvenTemp:    ovenTemp,
			Category:    SelectValue(p, "Category", "Other"),
			Difficulty:  SelectValue(p, "Difficulty", "Medium"),
			Servings:    IntOr(p, "Servings", 1),
			Tags:        MultiSelectValues(p, "Tags"),
			Favorite:    CheckboxValue(p, "Favorite"),
			Ingredients: []domain.IngredientDisplay{},
			LastUpdated: p.LastEditedTime,
		},
		JunctionIDs: RelationIDs(p, "RecipeIngredient"),
		HeroURL:     FileURL(p, "HeroImg"),
	}
}
