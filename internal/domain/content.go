package domain

// ContentItem is a registry row for a piece of content that can receive
// interactions. Content features register their items here; the interaction
// engine only needs existence and display metadata.
type ContentItem struct {
	Ref         EntityReference
	Title       string
	Description *string
	ImageURL    *string
	Audit
}

// ContentMetadata is the display data attached to shares.
type ContentMetadata struct {
	Ref         EntityReference
	Title       string
	Description *string
	ImageURL    *string
}

// Metadata projects the item's display fields.
func (c *ContentItem) Metadata() ContentMetadata {
	return ContentMetadata{
		Ref:         c.Ref,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
	}
}
