// Package resolve flattens recipe→ingredient junction entries into display
// records. One merge routine runs behind a pluggable lookup: an in-memory
// table when the reference databases were bulk-fetched, per-ID retrieval
// otherwise.
package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"content_fetcher/internal/domain"
)

// UnknownIngredientName is substituted when a junction entry references an
// ingredient that cannot be resolved.
const UnknownIngredientName = "Unknown Ingredient"

// Lookup finds junction entries and ingredients by identifier. A missing
// record is reported as (nil, nil); errors are reserved for lookup failures.
type Lookup interface {
	Junction(ctx context.Context, id string) (*domain.RecipeIngredient, error)
	Ingredient(ctx context.Context, id string) (*domain.Ingredient, error)
}

// Resolver merges junction entries with their ingredients.
type Resolver struct {
	lookup Lookup
	logger *slog.Logger
}

func New(lookup Lookup, logger *slog.Logger) *Resolver {
	return &Resolver{
		lookup: lookup,
		logger: logger.With("component", "resolve"),
	}
}

// Resolve maps a recipe's junction-entry identifiers to display records in
// order. Entries that fail to resolve are skipped (missing junction) or get
// the placeholder name (missing ingredient); either way the rest of the list
// is still produced. Returned errors describe the skipped entries.
func (r *Resolver) Resolve(ctx context.Context, junctionIDs []string) ([]domain.IngredientDisplay, []error) {
	resolved := []domain.IngredientDisplay{}
	var problems []error

	for _, id := range junctionIDs {
		junction, err := r.lookup.Junction(ctx, id)
		if err != nil {
			r.logger.Error("failed to look up junction entry", "junction_id", id, "error", err)
			problems = append(problems, fmt.Errorf("junction %s: %w", id, err))
			continue
		}
		if junction == nil {
			r.logger.Warn("junction entry not found", "junction_id", id)
			problems = append(problems, fmt.Errorf("junction %s: not found", id))
			continue
		}

		var ingredient *domain.Ingredient
		if junction.IngredientID != "" {
			ingredient, err = r.lookup.Ingredient(ctx, junction.IngredientID)
			if err != nil {
				r.logger.Error("failed to look up ingredient",
					"junction_id", id,
					"ingredient_id", junction.IngredientID,
					"error", err,
				)
				problems = append(problems, fmt.Errorf("ingredient %s: %w", junction.IngredientID, err))
				ingredient = nil
			}
		}

		resolved = append(resolved, merge(junction, ingredient))
	}

	return resolved, problems
}

// merge builds the flattened view: quantity, unit, purpose, instructions,
// optional and display come from the junction entry; name, brand, description
// and the pantry flag come from the resolved ingredient.
func merge(junction *domain.RecipeIngredient, ingredient *domain.Ingredient) domain.IngredientDisplay {
	display := domain.IngredientDisplay{
		ID:           junction.ID,
		Name:         UnknownIngredientName,
		Quantity:     junction.Quantity,
		Unit:         junction.Unit,
		Instructions: junction.Instructions,
		Purpose:      junction.Purpose,
		Optional:     junction.Optional,
		Display:      junction.Display,
	}

	if ingredient != nil {
		if ingredient.Name != "" {
			display.Name = ingredient.Name
		}
		display.Brand = ingredient.Brand
		display.Description = ingredient.Description
		display.InPantry = ingredient.InPantry
	}

	return display
}
