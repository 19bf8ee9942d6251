package normalize

import (
	"content_fetcher/internal/domain"
	"content_fetcher/internal/source/notion"
)

// Ingredient maps a raw ingredient reference record onto the output schema.
func Ingredient(p notion.Page) domain.Ingredient {
	return domain.Ingredient{
		ID:          p.ID,
		Name:        TitleText(p, "Name"),
		Description: RichTextValue(p, "Description"),
		Brand:       SelectValue(p, "Brand", ""),
		InPantry:    CheckboxValue(p, "In Pantry"),
	}
}

// RecipeIngredient maps a raw junction record onto the output schema.
func RecipeIngredient(p notion.Page) domain.RecipeIngredient {
	return domain.RecipeIngredient{
		ID:           p.ID,
		RecipeID:     FirstRelationID(p, "Recipe"),
		IngredientID: FirstRelationID(p, "Ingredient Database"),
		Quantity:     NumberValue(p, "Quantity"),
		Unit:         SelectValue(p, "Unit", ""),
		Purpose:      RichTextValue(p, "Purpose"),
		Instructions: RichTextValue(p, "Instructions"),
		Optional:     CheckboxValue(p, "Optional"),
		Display:      FormulaString(p, "Display"),
	}
}
