package multilang

import (
	"github.com/tilboerner/pico-multilanguage/internal/domain"
	"github.com/tilboerner/pico-multilanguage/internal/frontmatter"
)

// Template variable names contributed to the render scope.
const (
	VarLanguages     = "languages"
	VarPageLanguages = "page_languages"
)

// Meta keys contributed to the header registry.
const (
	MetaLanguage = "language"
	MetaGroupID  = "group_id"
)

// RegisterHeaders adds the language and group headers to h. "pid" is the
// current group header; "Id" is still read for older content.
func RegisterHeaders(h *frontmatter.Headers) {
	h.Add(MetaLanguage, "Language")
	h.Add(MetaGroupID, "pid")
	h.Add(MetaGroupID, "Id")
}

// RenderVars is the read-only view handed to the render stage.
type RenderVars struct {
	Languages     []string
	PageLanguages []*domain.PageRecord
}

// RenderVars returns the languages seen and all language versions of groupID.
func (x *Indexer) RenderVars(groupID string) RenderVars {
	return RenderVars{
		Languages:     x.Languages(),
		PageLanguages: x.SiblingsOf(groupID),
	}
}

// Apply sets the languages and page_languages variables in scope. Other
// entries are left alone.
func (v RenderVars) Apply(scope map[string]any) {
	if scope == nil {
		return
	}
	scope[VarLanguages] = v.Languages
	scope[VarPageLanguages] = v.PageLanguages
}
