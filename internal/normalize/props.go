// Package normalize maps raw Notion records onto the fixed output schema,
// applying the documented defaults for absent fields.
package normalize

import (
	"strings"

	"content_fetcher/internal/source/notion"
)

func prop(p notion.Page, key string) (notion.Property, bool) {
	v, ok := p.Properties[key]
	return v, ok
}

// TitleText extracts the plain text of a title property.
func TitleText(p notion.Page, key string) string {
	v, ok := prop(p, key)
	if !ok {
		return ""
	}
	return joinPlainText(v.Title)
}

// AnyTitle extracts the plain text of whichever property is typed as a title,
// regardless of its name. Standalone pages do not share a fixed schema.
func AnyTitle(p notion.Page) string {
	for _, v := range p.Properties {
		if v.Type == "title" && len(v.Title) > 0 {
			return joinPlainText(v.Title)
		}
	}
	return ""
}

// RichTextValue concatenates all plain-text runs of a rich-text property.
func RichTextValue(p notion.Page, key string) string {
	v, ok := prop(p, key)
	if !ok {
		return ""
	}
	return joinPlainText(v.RichText)
}

// SelectValue returns the selected option's label, or def when unset.
func SelectValue(p notion.Page, key, def string) string {
	v, ok := prop(p, key)
	if !ok || v.Select == nil || v.Select.Name == "" {
		return def
	}
	return v.Select.Name
}

// MultiSelectValues returns the labels of a multi-select property, never nil.
func MultiSelectValues(p notion.Page, key string) []string {
	values := []string{}
	v, ok := prop(p, key)
	if !ok {
		return values
	}
	for _, opt := range v.MultiSelect {
		values = append(values, opt.Name)
	}
	return values
}

// CheckboxValue returns a checkbox property, defaulting to false.
func CheckboxValue(p notion.Page, key string) bool {
	v, ok := prop(p, key)
	return ok && v.Checkbox
}

// NumberValue returns a number property, or nil when unset.
func NumberValue(p notion.Page, key string) *float64 {
	v, ok := prop(p, key)
	if !ok || v.Number == nil {
		return nil
	}
	n := *v.Number
	return &n
}

// IntOr returns a number property rounded down to an int, or def when unset.
func IntOr(p notion.Page, key string, def int) int {
	n := NumberValue(p, key)
	if n == nil {
		return def
	}
	return int(*n)
}

// DateStart returns the start of a date property, or "".
func DateStart(p notion.Page, key string) string {
	v, ok := prop(p, key)
	if !ok || v.Date == nil {
		return ""
	}
	return v.Date.Start
}

// RelationIDs returns the identifiers of a relation property, never nil.
func RelationIDs(p notion.Page, key string) []string {
	ids := []string{}
	v, ok := prop(p, key)
	if !ok {
		return ids
	}
	for _, ref := range v.Relation {
		ids = append(ids, ref.ID)
	}
	return ids
}

// FirstRelationID returns the first identifier of a relation property, for
// relations declared single-valued.
func FirstRelationID(p notion.Page, key string) string {
	ids := RelationIDs(p, key)
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// FileURL returns the URL of the first entry of a files property, or "".
func FileURL(p notion.Page, key string) string {
	v, ok := prop(p, key)
	if !ok || len(v.Files) == 0 {
		return ""
	}
	return v.Files[0].URL()
}

// FormulaString returns the string result of a formula property, or "".
func FormulaString(p notion.Page, key string) string {
	v, ok := prop(p, key)
	if !ok || v.Formula == nil || v.Formula.String == nil {
		return ""
	}
	return *v.Formula.String
}

func joinPlainText(runs []notion.RichText) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.PlainText)
	}
	return b.String()
}
