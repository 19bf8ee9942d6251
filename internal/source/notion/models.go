package notion

import "time"

// Page represents one record of a Notion database: an identifier plus a
// property bag keyed by field name.
type Page struct {
	ID             string              `json:"id"`
	CreatedTime    time.Time           `json:"created_time"`
	LastEditedTime time.Time           `json:"last_edited_time"`
	URL            string              `json:"url"`
	Properties     map[string]Property `json:"properties"`
}

// Property is the union of the property value shapes used by the content
// databases. Type selects which of the variant fields is populated.
type Property struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Checkbox    bool           `json:"checkbox,omitempty"`
	Date        *Date          `json:"date,omitempty"`
	Relation    []RelationRef  `json:"relation,omitempty"`
	Formula     *Formula       `json:"formula,omitempty"`
	Files       []File         `json:"files,omitempty"`
}

type RichText struct {
	Type       string       `json:"type"`
	PlainText  string       `json:"plain_text"`
	Href       *string      `json:"href,omitempty"`
	Annotations Annotations `json:"annotations"`
	Text       *TextContent `json:"text,omitempty"`
}

type Annotations struct {
	Bold          bool `json:"bold"`
	Italic        bool `json:"italic"`
	Strikethrough bool `json:"strikethrough"`
	Code          bool `json:"code"`
}

type TextContent struct {
	Content string `json:"content"`
}

type SelectOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Date struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// RelationRef is one entry of a relation property: a bare record identifier.
type RelationRef struct {
	ID string `json:"id"`
}

type Formula struct {
	Type    string   `json:"type"`
	String  *string  `json:"string,omitempty"`
	Number  *float64 `json:"number,omitempty"`
	Boolean *bool    `json:"boolean,omitempty"`
}

// File is a files-and-media entry; hosted uploads and external links carry
// their URL in different places.
type File struct {
	Name     string        `json:"name,omitempty"`
	Type     string        `json:"type"`
	File     *HostedFile   `json:"file,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
	Caption  []RichText    `json:"caption,omitempty"`
}

type HostedFile struct {
	URL        string    `json:"url"`
	ExpiryTime time.Time `json:"expiry_time"`
}

type ExternalFile struct {
	URL string `json:"url"`
}

// URL returns the file's URL regardless of hosting type, or "".
func (f File) URL() string {
	switch {
	case f.File != nil:
		return f.File.URL
	case f.External != nil:
		return f.External.URL
	default:
		return ""
	}
}

// Block is one node of a page's content tree.
type Block struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children"`

	Paragraph        *RichTextBlock `json:"paragraph,omitempty"`
	Heading1         *RichTextBlock `json:"heading_1,omitempty"`
	Heading2         *RichTextBlock `json:"heading_2,omitempty"`
	Heading3         *RichTextBlock `json:"heading_3,omitempty"`
	BulletedListItem *RichTextBlock `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextBlock `json:"numbered_list_item,omitempty"`
	Quote            *RichTextBlock `json:"quote,omitempty"`
	Callout          *RichTextBlock `json:"callout,omitempty"`
	Toggle           *RichTextBlock `json:"toggle,omitempty"`
	ToDo             *ToDoBlock     `json:"to_do,omitempty"`
	Code             *CodeBlock     `json:"code,omitempty"`
	Image            *File          `json:"image,omitempty"`

	// Children are fetched separately; the API does not inline them.
	Children []Block `json:"-"`
}

type RichTextBlock struct {
	RichText []RichText `json:"rich_text"`
}

type ToDoBlock struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
}

// Query is the body of a database query request.
type Query struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// Filter covers the two condition shapes the pipeline issues: a select/title
// condition on one property, or a conjunction of such conditions.
type Filter struct {
	And []Filter `json:"and,omitempty"`

	Property string         `json:"property,omitempty"`
	Select   *TextCondition `json:"select,omitempty"`
	Title    *TextCondition `json:"title,omitempty"`
}

type TextCondition struct {
	Equals     string `json:"equals,omitempty"`
	IsNotEmpty bool   `json:"is_not_empty,omitempty"`
}

type queryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type blocksResponse struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
