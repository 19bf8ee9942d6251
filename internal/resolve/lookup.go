package resolve

import (
	"context"
	"errors"

	"content_fetcher/internal/domain"
	"content_fetcher/internal/normalize"
	"content_fetcher/internal/source/notion"
)

// TableLookup resolves against pre-fetched in-memory tables; no network
// calls. Preferred whenever both reference databases are configured.
type TableLookup struct {
	junctions   map[string]domain.RecipeIngredient
	ingredients map[string]domain.Ingredient
}

func NewTableLookup(junctions []domain.RecipeIngredient, ingredients []domain.Ingredient) *TableLookup {
	l := &TableLookup{
		junctions:   make(map[string]domain.RecipeIngredient, len(junctions)),
		ingredients: make(map[string]domain.Ingredient, len(ingredients)),
	}
	for _, j := range junctions {
		l.junctions[j.ID] = j
	}
	for _, i := range ingredients {
		l.ingredients[i.ID] = i
	}
	return l
}

func (l *TableLookup) Junction(_ context.Context, id string) (*domain.RecipeIngredient, error) {
	j, ok := l.junctions[id]
	if !ok {
		return nil, nil
	}
	return &j, nil
}

func (l *TableLookup) Ingredient(_ context.Context, id string) (*domain.Ingredient, error) {
	i, ok := l.ingredients[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

// RecordFetcher is the single-record retrieval a SourceLookup needs.
type RecordFetcher interface {
	RetrievePage(ctx context.Context, pageID string) (*notion.Page, error)
}

// SourceLookup resolves by retrieving each record individually. Cost is two
// calls per junction entry; used when the reference databases were not
// bulk-fetched.
type SourceLookup struct {
	fetcher RecordFetcher
}

func NewSourceLookup(fetcher RecordFetcher) *SourceLookup {
	return &SourceLookup{fetcher: fetcher}
}

func (l *SourceLookup) Junction(ctx context.Context, id string) (*domain.RecipeIngredient, error) {
	page, err := l.fetcher.RetrievePage(ctx, id)
	if errors.Is(err, notion.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	j := normalize.RecipeIngredient(*page)
	return &j, nil
}

func (l *SourceLookup) Ingredient(ctx context.Context, id string) (*domain.Ingredient, error) {
	page, err := l.fetcher.RetrievePage(ctx, id)
	if errors.Is(err, notion.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	i := normalize.Ingredient(*page)
	return &i, nil
}
