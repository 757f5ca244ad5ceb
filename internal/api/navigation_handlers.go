package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tilboerner/pico-multilanguage/internal/domain"
	"github.com/tilboerner/pico-multilanguage/internal/service"
)

func (s *Server) registerNavigationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "prepareNavigation",
		Method:      http.MethodPost,
		Path:        "/api/v1/navigation",
		Summary:     "Prepare navigation",
		Description: "Indexes the submitted pages and returns the current page's same-language navigation, " +
			"its language versions and a language switcher",
		Tags: []string{"Pages"},
	}, s.handlePrepareNavigation)
}

// === DTOs ===

// PageRequest is one submitted page.
type PageRequest struct {
	URL         string `json:"url" minLength:"1" doc:"Page URL, unique within the request"`
	Title       string `json:"title,omitempty" doc:"Page title; overrides the front matter"`
	Description string `json:"description,omitempty" doc:"Page description; overrides the front matter"`
	Author      string `json:"author,omitempty" doc:"Page author; overrides the front matter"`
	Date        string `json:"date,omitempty" doc:"Page date; overrides the front matter"`
	Language    string `json:"language,omitempty" doc:"Page language; overrides the front matter"`
	GroupID     string `json:"group_id,omitempty" doc:"Cross-language page id; overrides pid/Id in the front matter"`
	RawContent  string `json:"raw_content,omitempty" doc:"Raw page source with an optional YAML header"`
}

// NavigationRequest is the request body for preparing navigation.
type NavigationRequest struct {
	DefaultLanguage string        `json:"default_language,omitempty" doc:"Overrides the server's default language for this request"`
	CurrentURL      string        `json:"current_url" minLength:"1" doc:"URL of the page being served"`
	Pages           []PageRequest `json:"pages" minItems:"1" doc:"All pages of the site, in navigation order"`
}

// NavigationInput wraps the navigation request for Huma.
type NavigationInput struct {
	Body NavigationRequest
}

// PageResponse contains page data in API responses.
type PageResponse struct {
	Key         string            `json:"key" doc:"Per-request page token"`
	URL         string            `json:"url" doc:"Page URL"`
	Title       string            `json:"title" doc:"Page title"`
	Description string            `json:"description,omitempty" doc:"Page description"`
	Author      string            `json:"author,omitempty" doc:"Page author"`
	Date        string            `json:"date,omitempty" doc:"Page date"`
	Language    string            `json:"language" doc:"Effective language"`
	GroupID     string            `json:"group_id,omitempty" doc:"Cross-language page id"`
	Meta        map[string]string `json:"meta,omitempty" doc:"Other front-matter values"`
}

// SwitcherEntry is one link of the language switcher.
type SwitcherEntry struct {
	Language string `json:"language" doc:"Language code"`
	Label    string `json:"label" doc:"Language name in that language"`
	URL      string `json:"url" doc:"URL of that language version"`
	Active   bool   `json:"active" doc:"Whether this is the current page"`
}

// NavigationResponse contains the prepared navigation.
type NavigationResponse struct {
	DefaultLanguage string          `json:"default_language" doc:"Default language used for this request"`
	Current         PageResponse    `json:"current" doc:"The current page"`
	Pages           []PageResponse  `json:"pages" doc:"Pages in the current page's language, in input order"`
	Previous        *PageResponse   `json:"previous,omitempty" doc:"Same-language page listed right after the current one"`
	Next            *PageResponse   `json:"next,omitempty" doc:"Same-language page listed right before the current one"`
	Languages       []string        `json:"languages" doc:"All languages seen, in first-seen order"`
	PageLanguages   []PageResponse  `json:"page_languages" doc:"All language versions of the current page, including itself"`
	Switcher        []SwitcherEntry `json:"switcher" doc:"Language switcher entries"`
}

// NavigationOutput wraps the navigation response for Huma.
type NavigationOutput struct {
	Body NavigationResponse
}

// === Handlers ===

func (s *Server) handlePrepareNavigation(ctx context.Context, input *NavigationInput) (*NavigationOutput, error) {
	req := service.PrepareRequest{
		DefaultLanguage: input.Body.DefaultLanguage,
		CurrentURL:      input.Body.CurrentURL,
		Pages:           make([]service.PageInput, len(input.Body.Pages)),
	}
	for i, p := range input.Body.Pages {
		req.Pages[i] = service.PageInput{
			URL:         p.URL,
			Title:       p.Title,
			Description: p.Description,
			Author:      p.Author,
			Date:        p.Date,
			Language:    p.Language,
			GroupID:     p.GroupID,
			RawContent:  p.RawContent,
		}
	}

	prepared, err := s.site.Prepare(ctx, req)
	if err != nil {
		return nil, toAPIError(err)
	}

	switcher := make([]SwitcherEntry, len(prepared.Switcher))
	for i, e := range prepared.Switcher {
		switcher[i] = SwitcherEntry{
			Language: e.Language,
			Label:    e.Label,
			URL:      e.URL,
			Active:   e.Active,
		}
	}

	return &NavigationOutput{
		Body: NavigationResponse{
			DefaultLanguage: prepared.DefaultLanguage,
			Current:         toPageResponse(prepared.Current),
			Pages:           toPageResponses(prepared.Pages),
			Previous:        toOptionalPageResponse(prepared.Previous),
			Next:            toOptionalPageResponse(prepared.Next),
			Languages:       prepared.Languages,
			PageLanguages:   toPageResponses(prepared.PageLanguages),
			Switcher:        switcher,
		},
	}, nil
}

func toPageResponse(p *domain.PageRecord) PageResponse {
	return PageResponse{
		Key:         p.Key,
		URL:         p.URL,
		Title:       p.Title,
		Description: p.Description,
		Author:      p.Author,
		Date:        p.Date,
		Language:    p.Language,
		GroupID:     p.GroupID,
		Meta:        p.Meta.Extra,
	}
}

func toOptionalPageResponse(p *domain.PageRecord) *PageResponse {
	if p == nil {
		return nil
	}
	resp := toPageResponse(p)
	return &resp
}

func toPageResponses(pages []*domain.PageRecord) []PageResponse {
	resp := make([]PageResponse, len(pages))
	for i, p := range pages {
		resp[i] = toPageResponse(p)
	}
	return resp
}
