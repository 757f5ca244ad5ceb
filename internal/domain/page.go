// Package domain holds the page records shared by the index, navigation and API layers.
package domain

// PageMetadata holds the front-matter values the multi-language index reads.
// Language comes from the "Language" header, GroupID from "pid" (or the
// legacy "Id" header). Both may be empty.
type PageMetadata struct {
	Language string `json:"language"`
	GroupID  string `json:"group_id"`

	// Extra carries every other parsed header (title, template, robots...).
	Extra map[string]string `json:"extra,omitempty"`
}

// PageRecord is one discovered content page.
//
// Records are shared by pointer between the page list, the language buckets
// and the group buckets; navigation relocates the current page by pointer
// identity, so hosts must forward the same *PageRecord through every stage.
type PageRecord struct {
	// Key is a per-request token that lets API clients correlate records.
	Key string `json:"key"`

	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Date        string `json:"date,omitempty"`
	RawContent  string `json:"-"`
	Content     string `json:"-"`

	Meta PageMetadata `json:"meta"`

	// Language is the effective language, never empty once registered.
	Language string `json:"language"`
	// GroupID is copied from Meta.GroupID. Empty means ungrouped.
	GroupID string `json:"group_id,omitempty"`
}

// Grouped reports whether the page belongs to a cross-language group.
func (p *PageRecord) Grouped() bool {
	return p.GroupID != ""
}
