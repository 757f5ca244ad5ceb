package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/tilboerner/pico-multilanguage/internal/domain"
	domainerrors "github.com/tilboerner/pico-multilanguage/internal/errors"
	"github.com/tilboerner/pico-multilanguage/internal/frontmatter"
	"github.com/tilboerner/pico-multilanguage/internal/id"
	"github.com/tilboerner/pico-multilanguage/internal/langtag"
	"github.com/tilboerner/pico-multilanguage/internal/multilang"
	"github.com/tilboerner/pico-multilanguage/internal/validation"
)

// Render scope keys set before the multi-language variables are added.
const (
	ScopeMeta         = "meta"
	ScopeCurrentPage  = "current_page"
	ScopePages        = "pages"
	ScopePreviousPage = "previous_page"
	ScopeNextPage     = "next_page"
)

const pageKeyPrefix = "pg"

// PageInput is one page as submitted by a client. Explicit fields take
// precedence over values parsed from RawContent's front matter.
type PageInput struct {
	URL         string `json:"url" validate:"required"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Date        string `json:"date,omitempty"`
	Language    string `json:"language,omitempty"`
	GroupID     string `json:"group_id,omitempty"`
	RawContent  string `json:"raw_content,omitempty"`
}

// PrepareRequest is the page set of one site build plus the page being served.
type PrepareRequest struct {
	// DefaultLanguage overrides the configured default for this request.
	DefaultLanguage string      `json:"default_language,omitempty"`
	CurrentURL      string      `json:"current_url" validate:"required"`
	Pages           []PageInput `json:"pages" validate:"required,min=1,unique=URL,dive"`
}

// SwitcherEntry is one link of a language switcher.
type SwitcherEntry struct {
	Language string `json:"language"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	Active   bool   `json:"active"`
}

// PreparedPage is everything the render stage needs for the current page.
type PreparedPage struct {
	DefaultLanguage string
	Current         *domain.PageRecord
	Pages           []*domain.PageRecord
	Previous        *domain.PageRecord
	Next            *domain.PageRecord
	Languages       []string
	PageLanguages   []*domain.PageRecord
	Switcher        []SwitcherEntry
	Scope           map[string]any
}

// SiteService runs the page pipeline: parse meta, index, filter navigation
// and build the render scope. A fresh index is built for every request.
type SiteService struct {
	defaultLanguage string
	headers         frontmatter.Headers
	validator       *validation.Validator
	logger          *slog.Logger
}

// NewSiteService creates a site service. defaultLanguage may be empty, in
// which case pages without a language fall back to multilang.FallbackLanguage.
func NewSiteService(defaultLanguage string, logger *slog.Logger) *SiteService {
	headers := frontmatter.DefaultHeaders()
	multilang.RegisterHeaders(&headers)

	return &SiteService{
		defaultLanguage: strings.TrimSpace(defaultLanguage),
		headers:         headers,
		validator:       validation.New(),
		logger:          logger,
	}
}

// Headers returns a copy of the registered meta headers.
func (s *SiteService) Headers() frontmatter.Headers {
	out := make(frontmatter.Headers, len(s.headers))
	copy(out, s.headers)
	return out
}

// DefaultLanguage returns the language assigned to pages that declare none.
func (s *SiteService) DefaultLanguage() string {
	x := s.newIndexer("")
	return x.DefaultLanguage()
}

// Prepare indexes req.Pages and computes the language-restricted navigation
// for the page at req.CurrentURL.
func (s *SiteService) Prepare(ctx context.Context, req PrepareRequest) (*PreparedPage, error) {
	// 1. Validate request shape.
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	// 2. Build records and register them in input order.
	indexer := s.newIndexer(req.DefaultLanguage)
	pages := make([]*domain.PageRecord, 0, len(req.Pages))
	for i, in := range req.Pages {
		record, err := s.buildRecord(i, in)
		if err != nil {
			return nil, err
		}
		indexer.FinalizeMeta(&record.Meta)
		pages = append(pages, indexer.RegisterPage(record))
	}

	// 3. Locate the current page and its neighbours in the full list.
	pos := -1
	for i, page := range pages {
		if page.URL == req.CurrentURL {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, domainerrors.NotFoundf("page %q is not part of the request", req.CurrentURL)
	}

	nav := &multilang.NavigationContext{
		Pages:   pages,
		Current: pages[pos],
	}
	if pos > 0 {
		nav.Previous = pages[pos-1]
	}
	if pos+1 < len(pages) {
		nav.Next = pages[pos+1]
	}

	// 4. Restrict navigation to the current language.
	multilang.FilterToCurrentLanguage(nav)

	// 5. Build the render scope.
	vars := indexer.RenderVars(nav.Current.GroupID)
	scope := map[string]any{
		ScopeMeta:         metaScope(nav.Current),
		ScopeCurrentPage:  nav.Current,
		ScopePages:        nav.Pages,
		ScopePreviousPage: nav.Previous,
		ScopeNextPage:     nav.Next,
	}
	vars.Apply(scope)

	prepared := &PreparedPage{
		DefaultLanguage: indexer.DefaultLanguage(),
		Current:         nav.Current,
		Pages:           nav.Pages,
		Previous:        nav.Previous,
		Next:            nav.Next,
		Languages:       vars.Languages,
		PageLanguages:   vars.PageLanguages,
		Switcher:        switcher(nav.Current, vars.PageLanguages),
		Scope:           scope,
	}

	s.logger.InfoContext(ctx, "navigation prepared",
		"request_id", middleware.GetReqID(ctx),
		"current", nav.Current.URL,
		"language", nav.Current.Language,
		"pages", len(pages),
		"in_language", len(nav.Pages),
		"languages", vars.Languages,
	)

	return prepared, nil
}

func (s *SiteService) newIndexer(requestDefault string) *multilang.Indexer {
	x := multilang.NewIndexer()
	x.SetDefaultLanguage(s.defaultLanguage)
	x.SetDefaultLanguage(strings.TrimSpace(requestDefault))
	return x
}

// buildRecord turns a client page into a record, merging parsed front matter
// under the explicit fields.
func (s *SiteService) buildRecord(i int, in PageInput) (*domain.PageRecord, error) {
	record := &domain.PageRecord{
		URL:        in.URL,
		RawContent: in.RawContent,
	}

	fields := frontmatter.Fields{}
	if in.RawContent != "" {
		parsed, body, err := frontmatter.Parse(in.RawContent, s.headers)
		if err != nil {
			return nil, domainerrors.Wrapf(err, domainerrors.CodeValidation, "pages[%d]: invalid front matter", i)
		}
		fields = parsed
		record.Content = body
	}

	record.Title = firstNonEmpty(in.Title, fields.Get("title"))
	record.Description = firstNonEmpty(in.Description, fields.Get("description"))
	record.Author = firstNonEmpty(in.Author, fields.Get("author"))
	record.Date = firstNonEmpty(in.Date, fields.Get("date"))
	record.Meta = domain.PageMetadata{
		Language: firstNonEmpty(in.Language, fields.Get(multilang.MetaLanguage)),
		GroupID:  firstNonEmpty(in.GroupID, fields.Get(multilang.MetaGroupID)),
	}

	for key, value := range fields {
		if value == "" || key == multilang.MetaLanguage || key == multilang.MetaGroupID {
			continue
		}
		if record.Meta.Extra == nil {
			record.Meta.Extra = make(map[string]string)
		}
		record.Meta.Extra[key] = value
	}

	key, err := id.Generate(pageKeyPrefix)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "generate page key")
	}
	record.Key = key

	return record, nil
}

func metaScope(page *domain.PageRecord) map[string]string {
	meta := make(map[string]string, len(page.Meta.Extra)+6)
	for k, v := range page.Meta.Extra {
		meta[k] = v
	}
	meta["title"] = page.Title
	meta["description"] = page.Description
	meta["author"] = page.Author
	meta["date"] = page.Date
	meta[multilang.MetaLanguage] = page.Meta.Language
	meta[multilang.MetaGroupID] = page.Meta.GroupID
	return meta
}

// switcher lists every language version of current. An ungrouped page only
// links to itself.
func switcher(current *domain.PageRecord, siblings []*domain.PageRecord) []SwitcherEntry {
	if len(siblings) == 0 {
		siblings = []*domain.PageRecord{current}
	}
	entries := make([]SwitcherEntry, 0, len(siblings))
	for _, page := range siblings {
		entries = append(entries, SwitcherEntry{
			Language: page.Language,
			Label:    langtag.Label(page.Language),
			URL:      page.URL,
			Active:   page == current,
		})
	}
	return entries
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
