package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"content_fetcher/internal/config"
	"content_fetcher/internal/domain"
	"content_fetcher/internal/markdown"
	"content_fetcher/internal/normalize"
	"content_fetcher/internal/resolve"
	"content_fetcher/internal/source/notion"
)

const (
	mealPrepSlug  = "meal-prep"
	mealPrepTitle = "Meal Prep"
	statusPublished = "Published"
)

// FetchService sequences one full pipeline run: reference tables, blog
// posts, recipes, the standalone page, metadata, artifacts. Per-record
// failures are recorded and recovered from; only writing the artifacts can
// fail the run.
type FetchService struct {
	source    ContentSource
	media     MediaLocalizer
	writer    ArtifactWriter
	manifest  ImageManifest
	publisher Publisher
	logger    *slog.Logger
	cfg       *config.Config
}

func NewFetchService(
	source ContentSource,
	media MediaLocalizer,
	writer ArtifactWriter,
	manifest ImageManifest,
	publisher Publisher,
	logger *slog.Logger,
	cfg *config.Config,
) *FetchService {
	return &FetchService{
		source:    source,
		media:     media,
		writer:    writer,
		manifest:  manifest,
		publisher: publisher,
		logger:    logger.With("component", "fetch"),
		cfg:       cfg,
	}
}

func (s *FetchService) Run(ctx context.Context) (*domain.FetchStats, error) {
	startTime := time.Now()
	stats := &domain.FetchStats{}

	hasReferenceData := s.cfg.Notion.HasReferenceData()
	s.logger.Info("starting content fetch",
		"reference_data", hasReferenceData,
		"meal_prep", s.cfg.Notion.MealPrepPageID != "",
	)

	if s.manifest != nil {
		if err := s.manifest.BeginRun(ctx); err != nil {
			s.logger.Warn("failed to begin manifest run", "error", err)
			s.manifest = nil
		}
	}

	var ingredients []domain.Ingredient
	var junctions []domain.RecipeIngredient
	var lookup resolve.Lookup

	if hasReferenceData {
		ingredients = s.fetchIngredients(ctx, stats)
		junctions = s.fetchJunctions(ctx, stats)
		lookup = resolve.NewTableLookup(junctions, ingredients)
	} else {
		lookup = resolve.NewSourceLookup(s.source)
	}
	resolver := resolve.New(lookup, s.logger)

	posts := s.fetchBlogPosts(ctx, stats)
	recipes := s.fetchRecipes(ctx, resolver, stats)
	mealPrep := s.fetchMealPrep(ctx, stats)

	stats.BlogPosts = len(posts)
	stats.Recipes = len(recipes)
	stats.Ingredients = len(ingredients)
	stats.RecipeIngredients = len(junctions)

	meta := domain.Metadata{
		LastFetched:           time.Now().UTC(),
		BlogPostCount:         len(posts),
		RecipeCount:           len(recipes),
		IngredientCount:       len(ingredients),
		RecipeIngredientCount: len(junctions),
		TotalItems:            len(posts) + len(recipes),
		HasIngredients:        hasReferenceData,
		HasMealPrep:           mealPrep.ID != "",
	}

	bundle := &domain.Bundle{
		BlogPosts:          posts,
		Recipes:            recipes,
		Ingredients:        ingredients,
		RecipeIngredients:  junctions,
		MealPrep:           mealPrep,
		Metadata:           meta,
		WriteReferenceData: hasReferenceData,
	}

	if err := s.writer.Write(ctx, bundle); err != nil {
		return stats, fmt.Errorf("write artifacts: %w", err)
	}

	s.pruneOrphans(ctx, stats)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, meta, len(stats.Problems)); err != nil {
			s.logger.Error("failed to publish run completion", "error", err)
			stats.AddProblem(domain.ScopeCollection, "", err)
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("content fetch completed",
		"blog_posts", stats.BlogPosts,
		"recipes", stats.Recipes,
		"ingredients", stats.Ingredients,
		"images", stats.ImagesDownloaded,
		"problems", len(stats.Problems),
		"duration", stats.Duration,
	)

	return stats, nil
}

// fetchIngredients bulk-fetches the ingredient reference database. A failed
// query degrades to an empty table.
func (s *FetchService) fetchIngredients(ctx context.Context, stats *domain.FetchStats) []domain.Ingredient {
	databaseID := s.cfg.Notion.IngredientDatabaseID
	pages, err := s.source.QueryDatabase(ctx, databaseID, notion.Query{
		Sorts: []notion.Sort{{Property: "Name", Direction: notion.SortAscending}},
	})
	if err != nil {
		s.logger.Error("failed to fetch ingredients", "database_id", databaseID, "error", err)
		stats.AddProblem(domain.ScopeCollection, databaseID, err)
		return []domain.Ingredient{}
	}

	ingredients := make([]domain.Ingredient, 0, len(pages))
	for _, page := range pages {
		ingredients = append(ingredients, normalize.Ingredient(page))
	}

	s.logger.Info("fetched ingredients", "count", len(ingredients))
	return ingredients
}

// fetchJunctions bulk-fetches the recipe-ingredient junction database.
func (s *FetchService) fetchJunctions(ctx context.Context, stats *domain.FetchStats) []domain.RecipeIngredient {
	databaseID := s.cfg.Notion.RecipeIngredientDatabaseID
	pages, err := s.source.QueryDatabase(ctx, databaseID, notion.Query{})
	if err != nil {
		s.logger.Error("failed to fetch junction entries", "database_id", databaseID, "error", err)
		stats.AddProblem(domain.ScopeCollection, databaseID, err)
		return []domain.RecipeIngredient{}
	}

	junctions := make([]domain.RecipeIngredient, 0, len(pages))
	for _, page := range pages {
		junctions = append(junctions, normalize.RecipeIngredient(page))
	}

	s.logger.Info("fetched junction entries", "count", len(junctions))
	return junctions
}

// fetchBlogPosts fetches published posts newest-first and fills in their
// converted, localized content.
func (s *FetchService) fetchBlogPosts(ctx context.Context, stats *domain.FetchStats) []domain.BlogPost {
	databaseID := s.cfg.Notion.BlogDatabaseID
	pages, err := s.source.QueryDatabase(ctx, databaseID, notion.Query{
		Filter: &notion.Filter{
			Property: "Status",
			Select:   &notion.TextCondition{Equals: statusPublished},
		},
		Sorts: []notion.Sort{{Property: "Date", Direction: notion.SortDescending}},
	})
	if err != nil {
		s.logger.Error("failed to fetch blog posts", "database_id", databaseID, "error", err)
		stats.AddProblem(domain.ScopeCollection, databaseID, err)
		return []domain.BlogPost{}
	}

	posts := make([]domain.BlogPost, 0, len(pages))
	for _, page := range pages {
		post := normalize.BlogPost(page)
		s.logger.Info("processing blog post", "title", post.Title, "slug", post.Slug)

		post.Content = s.pageContent(ctx, page.ID, post.Slug, stats)
		if post.ReadTime <= 0 {
			post.ReadTime = normalize.ReadTime(post.Content)
		}

		posts = append(posts, post)
	}

	s.logger.Info("fetched blog posts", "count", len(posts))
	return posts
}

// fetchRecipes fetches published, named recipes sorted by name and resolves
// each one's ingredients and hero image.
func (s *FetchService) fetchRecipes(ctx context.Context, resolver *resolve.Resolver, stats *domain.FetchStats) []domain.Recipe {
	databaseID := s.cfg.Notion.RecipeDatabaseID
	pages, err := s.source.QueryDatabase(ctx, databaseID, notion.Query{
		Filter: &notion.Filter{
			And: []notion.Filter{
				{Property: "Status", Select: &notion.TextCondition{Equals: statusPublished}},
				{Property: "Name", Title: &notion.TextCondition{IsNotEmpty: true}},
			},
		},
		Sorts: []notion.Sort{{Property: "Name", Direction: notion.SortAscending}},
	})
	if err != nil {
		s.logger.Error("failed to fetch recipes", "database_id", databaseID, "error", err)
		stats.AddProblem(domain.ScopeCollection, databaseID, err)
		return []domain.Recipe{}
	}

	recipes := make([]domain.Recipe, 0, len(pages))
	for _, page := range pages {
		record := normalize.Recipe(page)
		recipe := record.Recipe
		s.logger.Info("processing recipe", "name", recipe.Name, "slug", recipe.Slug)

		recipe.Content = s.pageContent(ctx, page.ID, recipe.Slug, stats)

		ingredients, problems := resolver.Resolve(ctx, record.JunctionIDs)
		for _, err := range problems {
			stats.AddProblem(domain.ScopeRelation, page.ID, err)
		}
		recipe.Ingredients = ingredients

		if record.HeroURL != "" {
			local, err := s.media.LocalizeHero(ctx, record.HeroURL, recipe.Slug)
			if err != nil {
				s.logger.Error("failed to download hero image",
					"recipe", recipe.Slug,
					"url", record.HeroURL,
					"error", err,
				)
				stats.AddProblem(domain.ScopeMedia, page.ID, err)
			} else {
				recipe.HeroImage = local
				stats.ImagesDownloaded++
			}
		}

		recipes = append(recipes, recipe)
	}

	s.logger.Info("fetched recipes", "count", len(recipes))
	return recipes
}

// fetchMealPrep fetches the standalone page when configured. A missing or
// unconfigured page yields the placeholder so the artifact always exists.
func (s *FetchService) fetchMealPrep(ctx context.Context, stats *domain.FetchStats) domain.Page {
	placeholder := domain.Page{
		Title:   mealPrepTitle,
		Slug:    mealPrepSlug,
		Content: "",
		Excerpt: "",
	}

	pageID := s.cfg.Notion.MealPrepPageID
	if pageID == "" {
		return placeholder
	}

	raw, err := s.source.RetrievePage(ctx, pageID)
	if err != nil {
		if errors.Is(err, notion.ErrNotFound) {
			s.logger.Warn("meal prep page not found", "page_id", pageID)
		} else {
			s.logger.Error("failed to fetch meal prep page", "page_id", pageID, "error", err)
		}
		stats.AddProblem(domain.ScopePage, pageID, err)
		return placeholder
	}

	page := normalize.StandalonePage(*raw, mealPrepTitle, mealPrepSlug)
	page.Content = s.pageContent(ctx, raw.ID, mealPrepSlug, stats)
	if page.Excerpt == "" {
		page.Excerpt = normalize.Excerpt(page.Content, 160)
	}

	return page
}

// pageContent fetches a record's block tree, converts it to markdown, and
// localizes embedded images. Any failure degrades to empty content for that
// one record.
func (s *FetchService) pageContent(ctx context.Context, pageID, slug string, stats *domain.FetchStats) string {
	blocks, err := s.source.PageBlocks(ctx, pageID)
	if err != nil {
		s.logger.Error("failed to fetch page content", "page_id", pageID, "error", err)
		stats.AddProblem(domain.ScopeContent, pageID, err)
		return ""
	}

	result := s.media.Localize(ctx, markdown.Convert(blocks), slug)
	for _, failure := range result.Failures {
		stats.AddProblem(domain.ScopeMedia, pageID, failure.Err)
	}
	stats.ImagesDownloaded += len(result.Images)

	return result.Text
}

// pruneOrphans deletes local images no source record references anymore.
func (s *FetchService) pruneOrphans(ctx context.Context, stats *domain.FetchStats) {
	if s.manifest == nil || !s.cfg.Media.PruneOrphans {
		return
	}

	orphans, err := s.manifest.Orphans(ctx)
	if err != nil {
		s.logger.Error("failed to list orphaned images", "error", err)
		stats.AddProblem(domain.ScopeMedia, "", err)
		return
	}

	pruned := 0
	for _, filename := range orphans {
		if err := s.media.Remove(filename); err != nil {
			s.logger.Error("failed to remove orphaned image", "filename", filename, "error", err)
			stats.AddProblem(domain.ScopeMedia, filename, err)
			continue
		}
		if err := s.manifest.Forget(ctx, filename); err != nil {
			s.logger.Error("failed to forget orphaned image", "filename", filename, "error", err)
			stats.AddProblem(domain.ScopeMedia, filename, err)
			continue
		}
		pruned++
	}

	if pruned > 0 {
		s.logger.Info("pruned orphaned images", "count", pruned)
	}
}
