package resolve

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"content_fetcher/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func floatPtr(f float64) *float64 { return &f }

func tableFixture() *TableLookup {
	junctions := []domain.RecipeIngredient{
		{
			ID:           "junction-1",
			RecipeID:     "recipe-1",
			IngredientID: "ing-1",
			Quantity:     floatPtr(2),
			Unit:         "cup",
			Purpose:      "Base",
			Instructions: "Rinsed",
			Optional:     false,
			Display:      "2 cup Rice",
		},
		{
			ID:           "junction-2",
			RecipeID:     "recipe-1",
			IngredientID: "ing-missing",
			Optional:     true,
		},
	}
	ingredients := []domain.Ingredient{
		{ID: "ing-1", Name: "Rice", Description: "Long grain", Brand: "Great Value", InPantry: true},
	}
	return NewTableLookup(junctions, ingredients)
}

func TestResolveMergesJunctionAndIngredient(t *testing.T) {
	r := New(tableFixture(), testLogger())

	resolved, problems := r.Resolve(context.Background(), []string{"junction-1"})

	assert.Empty(t, problems)
	require.Len(t, resolved, 1)

	d := resolved[0]
	assert.Equal(t, "junction-1", d.ID)
	assert.Equal(t, "Rice", d.Name)
	require.NotNil(t, d.Quantity)
	assert.Equal(t, 2.0, *d.Quantity)
	assert.Equal(t, "cup", d.Unit)
	assert.Equal(t, "Great Value", d.Brand)
	assert.Equal(t, "Long grain", d.Description)
	assert.Equal(t, "Rinsed", d.Instructions)
	assert.Equal(t, "Base", d.Purpose)
	assert.False(t, d.Optional)
	assert.True(t, d.InPantry)
	assert.Equal(t, "2 cup Rice", d.Display)
}

func TestResolveUnknownIngredient(t *testing.T) {
	r := New(tableFixture(), testLogger())

	resolved, problems := r.Resolve(context.Background(), []string{"junction-2"})

	assert.Empty(t, problems)
	require.Len(t, resolved, 1)

	d := resolved[0]
	assert.Equal(t, UnknownIngredientName, d.Name)
	assert.False(t, d.InPantry)
	assert.Empty(t, d.Brand)
	assert.Empty(t, d.Description)
	assert.True(t, d.Optional)
}

func TestResolveMissingJunctionSkipped(t *testing.T) {
	r := New(tableFixture(), testLogger())

	resolved, problems := r.Resolve(context.Background(), []string{"junction-1", "junction-gone"})

	require.Len(t, resolved, 1)
	assert.Equal(t, "junction-1", resolved[0].ID)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Error(), "junction-gone")
}

func TestResolvePreservesOrder(t *testing.T) {
	r := New(tableFixture(), testLogger())

	resolved, _ := r.Resolve(context.Background(), []string{"junction-2", "junction-1"})

	require.Len(t, resolved, 2)
	assert.Equal(t, "junction-2", resolved[0].ID)
	assert.Equal(t, "junction-1", resolved[1].ID)
}

func TestResolveEmptyList(t *testing.T) {
	r := New(tableFixture(), testLogger())

	resolved, problems := r.Resolve(context.Background(), nil)

	assert.Empty(t, problems)
	assert.NotNil(t, resolved)
	assert.Empty(t, resolved)
}

type failingLookup struct{}

func (failingLookup) Junction(context.Context, string) (*domain.RecipeIngredient, error) {
	return nil, errors.New("service unavailable")
}

func (failingLookup) Ingredient(context.Context, string) (*domain.Ingredient, error) {
	return nil, errors.New("service unavailable")
}

func TestResolveLookupFailureContinues(t *testing.T) {
	r := New(failingLookup{}, testLogger())

	resolved, problems := r.Resolve(context.Background(), []string{"a", "b"})

	assert.Empty(t, resolved)
	assert.Len(t, problems, 2)
}
