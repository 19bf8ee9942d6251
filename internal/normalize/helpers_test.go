package normalize

import (
	"time"

	"content_fetcher/internal/source/notion"
)

var lastEdited = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func page(id string, props map[string]notion.Property) notion.Page {
	return notion.Page{
		ID:             id,
		LastEditedTime: lastEdited,
		Properties:     props,
	}
}

func titleProp(text string) notion.Property {
	return notion.Property{Type: "title", Title: []notion.RichText{{PlainText: text}}}
}

func richTextProp(texts ...string) notion.Property {
	runs := make([]notion.RichText, 0, len(texts))
	for _, t := range texts {
		runs = append(runs, notion.RichText{PlainText: t})
	}
	return notion.Property{Type: "rich_text", RichText: runs}
}

func selectProp(name string) notion.Property {
	if name == "" {
		return notion.Property{Type: "select"}
	}
	return notion.Property{Type: "select", Select: &notion.SelectOption{Name: name}}
}

func multiSelectProp(names ...string) notion.Property {
	opts := make([]notion.SelectOption, 0, len(names))
	for _, n := range names {
		opts = append(opts, notion.SelectOption{Name: n})
	}
	return notion.Property{Type: "multi_select", MultiSelect: opts}
}

func numberProp(n float64) notion.Property {
	return notion.Property{Type: "number", Number: &n}
}

func checkboxProp(checked bool) notion.Property {
	return notion.Property{Type: "checkbox", Checkbox: checked}
}

func dateProp(start string) notion.Property {
	return notion.Property{Type: "date", Date: &notion.Date{Start: start}}
}

func relationProp(ids ...string) notion.Property {
	refs := make([]notion.RelationRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, notion.RelationRef{ID: id})
	}
	return notion.Property{Type: "relation", Relation: refs}
}

func formulaStringProp(s string) notion.Property {
	return notion.Property{Type: "formula", Formula: &notion.Formula{Type: "string", String: &s}}
}

func filesProp(url string) notion.Property {
	return notion.Property{Type: "files", Files: []notion.File{
		{Type: "file", File: &notion.HostedFile{URL: url}},
	}}
}
