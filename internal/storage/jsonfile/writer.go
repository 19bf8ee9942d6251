// Package jsonfile writes the pipeline's output artifacts: pretty-printed
// JSON files consumed by the client-side app at build time.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"content_fetcher/internal/domain"
)

const (
	BlogPostsFile         = "blog-posts.json"
	RecipesFile           = "recipes.json"
	IngredientsFile       = "ingredients.json"
	RecipeIngredientsFile = "recipe-ingredients.json"
	MealPrepFile          = "meal-prep.json"
	MetadataFile          = "metadata.json"
)

type Writer struct {
	dataDir string
	logger  *slog.Logger
}

// NewWriter creates a Writer, ensuring the data directory exists.
func NewWriter(dataDir string, logger *slog.Logger) (*Writer, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Writer{
		dataDir: dataDir,
		logger:  logger.With("component", "writer"),
	}, nil
}

// Write serializes the whole bundle. Every artifact is overwritten on each
// run; the reference-data files are only emitted when their databases were
// configured.
func (w *Writer) Write(_ context.Context, bundle *domain.Bundle) error {
	if err := w.writeFile(BlogPostsFile, bundle.BlogPosts); err != nil {
		return err
	}
	if err := w.writeFile(RecipesFile, bundle.Recipes); err != nil {
		return err
	}
	if bundle.WriteReferenceData {
		if err := w.writeFile(IngredientsFile, bundle.Ingredients); err != nil {
			return err
		}
		if err := w.writeFile(RecipeIngredientsFile, bundle.RecipeIngredients); err != nil {
			return err
		}
	}
	if err := w.writeFile(MealPrepFile, bundle.MealPrep); err != nil {
		return err
	}
	if err := w.writeFile(MetadataFile, bundle.Metadata); err != nil {
		return err
	}
	return nil
}

func (w *Writer) writeFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	path := filepath.Join(w.dataDir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	w.logger.Info("wrote artifact", "file", name, "bytes", len(data))
	return nil
}
