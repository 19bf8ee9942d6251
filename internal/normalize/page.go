package normalize

import (
	"content_fetcher/internal/domain"
	"content_fetcher/internal/source/notion"
)

// StandalonePage maps a raw standalone-page record onto the output schema.
// The slug is fixed by the caller; the title comes from whichever property is
// typed as a title, falling back to fallbackTitle.
func StandalonePage(p notion.Page, fallbackTitle, slug string) domain.Page {
	title := AnyTitle(p)
	if title == "" {
		title = fallbackTitle
	}

	return domain.Page{
		ID:          p.ID,
		Title:       title,
		Slug:        slug,
		Excerpt:     RichTextValue(p, "Excerpt"),
		LastUpdated: p.LastEditedTime,
	}
}
