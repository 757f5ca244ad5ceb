// Package multilang indexes content pages by language and by cross-language
// page identity, and narrows previous/next navigation to the current page's
// language.
//
// Pages that share a group id ("pid" header) are language versions of the
// same content. A page without a language header gets the default language.
//
// One Indexer serves one page-load pass. It is not safe for concurrent use.
package multilang

import (
	"github.com/tilboerner/pico-multilanguage/internal/domain"
)

// FallbackLanguage is used when no default language is configured.
const FallbackLanguage = "en"

// Indexer groups registered pages by effective language and by group id.
type Indexer struct {
	defaultLanguage string

	byLanguage map[string][]*domain.PageRecord
	languages  []string // first-seen order

	byGroup map[string][]*domain.PageRecord

	count int
}

// NewIndexer creates an empty indexer using FallbackLanguage as default.
func NewIndexer() *Indexer {
	return &Indexer{
		defaultLanguage: FallbackLanguage,
		byLanguage:      make(map[string][]*domain.PageRecord),
		byGroup:         make(map[string][]*domain.PageRecord),
	}
}

// SetDefaultLanguage overrides the fallback default. An empty value keeps the
// current default. The value is not validated as a language tag.
func (x *Indexer) SetDefaultLanguage(value string) {
	if value == "" {
		return
	}
	x.defaultLanguage = value
}

// DefaultLanguage returns the language assigned to pages without one.
func (x *Indexer) DefaultLanguage() string {
	return x.defaultLanguage
}

// ResolveLanguage returns meta.Language, or the default when it is empty.
func (x *Indexer) ResolveLanguage(meta domain.PageMetadata) string {
	if meta.Language != "" {
		return meta.Language
	}
	return x.defaultLanguage
}

// FinalizeMeta fills an empty meta.Language with the default language.
// Hosts call it right after parsing a page's front matter.
func (x *Indexer) FinalizeMeta(meta *domain.PageMetadata) {
	if meta == nil {
		return
	}
	meta.Language = x.ResolveLanguage(*meta)
}

// RegisterPage stamps the effective language and group id onto record and
// appends it to its language bucket and, when grouped, to its group bucket.
// The same pointer is stored in both buckets and returned.
func (x *Indexer) RegisterPage(record *domain.PageRecord) *domain.PageRecord {
	if record == nil {
		return nil
	}

	record.Language = x.ResolveLanguage(record.Meta)
	record.GroupID = record.Meta.GroupID

	if _, seen := x.byLanguage[record.Language]; !seen {
		x.languages = append(x.languages, record.Language)
	}
	x.byLanguage[record.Language] = append(x.byLanguage[record.Language], record)

	if record.Grouped() {
		x.byGroup[record.GroupID] = append(x.byGroup[record.GroupID], record)
	}

	x.count++
	return record
}

// Len returns the number of registered pages.
func (x *Indexer) Len() int {
	return x.count
}

// Languages returns the distinct languages in the order they were first seen.
func (x *Indexer) Languages() []string {
	out := make([]string, len(x.languages))
	copy(out, x.languages)
	return out
}

// PagesByLanguage returns the pages of lang in registration order.
func (x *Indexer) PagesByLanguage(lang string) []*domain.PageRecord {
	return clonePages(x.byLanguage[lang])
}

// SiblingsOf returns every language version of groupID, including the page
// being rendered. Empty or unknown ids yield an empty slice.
func (x *Indexer) SiblingsOf(groupID string) []*domain.PageRecord {
	if groupID == "" {
		return []*domain.PageRecord{}
	}
	return clonePages(x.byGroup[groupID])
}

func clonePages(pages []*domain.PageRecord) []*domain.PageRecord {
	out := make([]*domain.PageRecord, len(pages))
	copy(out, pages)
	return out
}
