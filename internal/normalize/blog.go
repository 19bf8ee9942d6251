package normalize

import (
	"time"

	"content_fetcher/internal/domain"
	"content_fetcher/internal/source/notion"
)

// BlogPost maps a raw blog record onto the output schema. Content and the
// computed read time are filled in later, after the page body is converted.
func BlogPost(p notion.Page) domain.BlogPost {
	title := TitleText(p, "Title")

	slug := RichTextValue(p, "Slug")
	if slug == "" {
		slug = Slugify(title)
	}

	date := DateStart(p, "Date")
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	author := RichTextValue(p, "Author")
	if author == "" {
		author = "Anonymous"
	}

	return domain.BlogPost{
		ID:          p.ID,
		Title:       title,
		Slug:        slug,
		Date:        date,
		Excerpt:     RichTextValue(p, "Excerpt"),
		Author:      author,
		Category:    SelectValue(p, "Category", "Uncategorized"),
		Tags:        MultiSelectValues(p, "Tags"),
		Featured:    CheckboxValue(p, "Featured"),
		ReadTime:    IntOr(p, "ReadTime", 0),
		LastUpdated: p.LastEditedTime,
	}
}
