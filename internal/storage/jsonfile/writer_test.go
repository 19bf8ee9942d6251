package jsonfile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_fetcher/internal/domain"
)

func newTestWriter(t *testing.T) (*Writer, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := NewWriter(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return w, dir
}

func sampleBundle() *domain.Bundle {
	return &domain.Bundle{
		BlogPosts: []domain.BlogPost{{
			ID:       "p1",
			Title:    "Hello World",
			Slug:     "hello-world",
			Date:     "2024-01-01",
			Author:   "Anonymous",
			Category: "Uncategorized",
			Tags:     []string{},
			ReadTime: 1,
		}},
		Recipes:           []domain.Recipe{},
		Ingredients:       []domain.Ingredient{{ID: "i1", Name: "Flour"}},
		RecipeIngredients: []domain.RecipeIngredient{{ID: "j1", RecipeID: "r1", IngredientID: "i1"}},
		MealPrep:          domain.Page{Title: "Meal Prep", Slug: "meal-prep"},
		Metadata: domain.Metadata{
			LastFetched:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			BlogPostCount: 1,
			TotalItems:    1,
		},
	}
}

func TestWriteEmitsCoreArtifacts(t *testing.T) {
	w, dir := newTestWriter(t)

	require.NoError(t, w.Write(context.Background(), sampleBundle()))

	for _, name := range []string{BlogPostsFile, RecipesFile, MealPrepFile, MetadataFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.NoFileExists(t, filepath.Join(dir, IngredientsFile))
	assert.NoFileExists(t, filepath.Join(dir, RecipeIngredientsFile))
}

func TestWriteEmitsReferenceDataWhenEnabled(t *testing.T) {
	w, dir := newTestWriter(t)

	bundle := sampleBundle()
	bundle.WriteReferenceData = true
	require.NoError(t, w.Write(context.Background(), bundle))

	assert.FileExists(t, filepath.Join(dir, IngredientsFile))
	assert.FileExists(t, filepath.Join(dir, RecipeIngredientsFile))
}

func TestWriteProducesValidJSON(t *testing.T) {
	w, dir := newTestWriter(t)

	require.NoError(t, w.Write(context.Background(), sampleBundle()))

	data, err := os.ReadFile(filepath.Join(dir, BlogPostsFile))
	require.NoError(t, err)
	assert.True(t, len(data) > 0 && data[len(data)-1] == '\n')

	var posts []domain.BlogPost
	require.NoError(t, json.Unmarshal(data, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "hello-world", posts[0].Slug)
	assert.NotNil(t, posts[0].Tags)
}

func TestWriteEmptyCollectionsMarshalAsArrays(t *testing.T) {
	w, dir := newTestWriter(t)

	bundle := sampleBundle()
	bundle.BlogPosts = []domain.BlogPost{}
	require.NoError(t, w.Write(context.Background(), bundle))

	data, err := os.ReadFile(filepath.Join(dir, BlogPostsFile))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestWriteOverwritesPreviousRun(t *testing.T) {
	w, dir := newTestWriter(t)

	require.NoError(t, w.Write(context.Background(), sampleBundle()))

	bundle := sampleBundle()
	bundle.BlogPosts = []domain.BlogPost{}
	bundle.Metadata.BlogPostCount = 0
	require.NoError(t, w.Write(context.Background(), bundle))

	data, err := os.ReadFile(filepath.Join(dir, BlogPostsFile))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestNewWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewWriter(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
