// Package markdown flattens a Notion block tree into markdown text.
package markdown

import (
	"fmt"
	"strings"

	"content_fetcher/internal/source/notion"
)

// Convert renders a block tree as markdown. Unsupported block types are
// skipped; a malformed block never fails the whole conversion.
func Convert(blocks []notion.Block) string {
	var b strings.Builder
	renderBlocks(&b, blocks, 0)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderBlocks(b *strings.Builder, blocks []notion.Block, depth int) {
	numbered := 0

	for _, block := range blocks {
		if block.Type == "numbered_list_item" {
			numbered++
		} else {
			numbered = 0
		}
		renderBlock(b, block, depth, numbered)
	}
}

func renderBlock(b *strings.Builder, block notion.Block, depth, ordinal int) {
	indent := strings.Repeat("  ", depth)

	switch block.Type {
	case "paragraph":
		if block.Paragraph == nil {
			return
		}
		text := Text(block.Paragraph.RichText)
		if text != "" {
			b.WriteString(indent + text + "\n\n")
		}
	case "heading_1":
		writeHeading(b, indent, "# ", block.Heading1)
	case "heading_2":
		writeHeading(b, indent, "## ", block.Heading2)
	case "heading_3":
		writeHeading(b, indent, "### ", block.Heading3)
	case "bulleted_list_item":
		if block.BulletedListItem == nil {
			return
		}
		b.WriteString(indent + "- " + Text(block.BulletedListItem.RichText) + "\n")
		renderChildren(b, block, depth+1)
	case "numbered_list_item":
		if block.NumberedListItem == nil {
			return
		}
		fmt.Fprintf(b, "%s%d. %s\n", indent, ordinal, Text(block.NumberedListItem.RichText))
		renderChildren(b, block, depth+1)
	case "to_do":
		if block.ToDo == nil {
			return
		}
		mark := " "
		if block.ToDo.Checked {
			mark = "x"
		}
		fmt.Fprintf(b, "%s- [%s] %s\n", indent, mark, Text(block.ToDo.RichText))
		renderChildren(b, block, depth+1)
	case "quote":
		if block.Quote == nil {
			return
		}
		b.WriteString(indent + "> " + Text(block.Quote.RichText) + "\n\n")
	case "callout":
		if block.Callout == nil {
			return
		}
		b.WriteString(indent + "> " + Text(block.Callout.RichText) + "\n\n")
		renderChildren(b, block, depth)
	case "toggle":
		if block.Toggle == nil {
			return
		}
		b.WriteString(indent + Text(block.Toggle.RichText) + "\n\n")
		renderChildren(b, block, depth)
	case "code":
		if block.Code == nil {
			return
		}
		b.WriteString(indent + "```" + block.Code.Language + "\n")
		b.WriteString(plainText(block.Code.RichText) + "\n")
		b.WriteString(indent + "```\n\n")
	case "image":
		if block.Image == nil || block.Image.URL() == "" {
			return
		}
		alt := plainText(block.Image.Caption)
		fmt.Fprintf(b, "%s![%s](%s)\n\n", indent, alt, block.Image.URL())
	case "divider":
		b.WriteString(indent + "---\n\n")
	default:
		// Unsupported type: keep whatever children it carries, drop the node.
		renderChildren(b, block, depth)
	}
}

func writeHeading(b *strings.Builder, indent, prefix string, block *notion.RichTextBlock) {
	if block == nil {
		return
	}
	b.WriteString(indent + prefix + Text(block.RichText) + "\n\n")
}

func renderChildren(b *strings.Builder, block notion.Block, depth int) {
	if len(block.Children) > 0 {
		renderBlocks(b, block.Children, depth)
	}
}

// Text renders a rich-text run with markdown inline formatting.
func Text(runs []notion.RichText) string {
	var b strings.Builder
	for _, run := range runs {
		text := run.PlainText

		if run.Annotations.Code {
			text = "`" + text + "`"
		}
		if run.Annotations.Bold {
			text = "**" + text + "**"
		}
		if run.Annotations.Italic {
			text = "*" + text + "*"
		}
		if run.Annotations.Strikethrough {
			text = "~~" + text + "~~"
		}
		if run.Href != nil && *run.Href != "" {
			text = "[" + text + "](" + *run.Href + ")"
		}

		b.WriteString(text)
	}
	return b.String()
}

func plainText(runs []notion.RichText) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.PlainText)
	}
	return b.String()
}
