package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/tilboerner/pico-multilanguage/internal/errors"
	"github.com/tilboerner/pico-multilanguage/internal/logger"
	"github.com/tilboerner/pico-multilanguage/internal/multilang"
)

func newTestSiteService(defaultLanguage string) *SiteService {
	return NewSiteService(defaultLanguage, logger.Discard().Logger)
}

func TestSiteService_Prepare_FiltersToCurrentLanguage(t *testing.T) {
	svc := newTestSiteService("en")

	prepared, err := svc.Prepare(context.Background(), PrepareRequest{
		CurrentURL: "/c",
		Pages: []PageInput{
			{URL: "/a", Language: "en", GroupID: "1"},
			{URL: "/b", Language: "de", GroupID: "1"},
			{URL: "/c", Language: "en", GroupID: "2"},
		},
	})
	require.NoError(t, err)

	require.Len(t, prepared.Pages, 2)
	assert.Equal(t, "/a", prepared.Pages[0].URL)
	assert.Equal(t, "/c", prepared.Pages[1].URL)
	assert.Same(t, prepared.Current, prepared.Pages[1])
	assert.Nil(t, prepared.Previous, "current is last in its language")
	require.NotNil(t, prepared.Next)
	assert.Equal(t, "/a", prepared.Next.URL)

	assert.Equal(t, []string{"en", "de"}, prepared.Languages)
	require.Len(t, prepared.PageLanguages, 1)
	assert.Same(t, prepared.Current, prepared.PageLanguages[0])
}

func TestSiteService_Prepare_SwitcherListsGroup(t *testing.T) {
	svc := newTestSiteService("en")

	prepared, err := svc.Prepare(context.Background(), PrepareRequest{
		CurrentURL: "/de/about",
		Pages: []PageInput{
			{URL: "/about", GroupID: "about"},
			{URL: "/de/about", Language: "de", GroupID: "about"},
			{URL: "/contact"},
		},
	})
	require.NoError(t, err)

	require.Len(t, prepared.Switcher, 2)
	assert.Equal(t, SwitcherEntry{Language: "en", Label: "English", URL: "/about"}, prepared.Switcher[0])
	assert.Equal(t, SwitcherEntry{Language: "de", Label: "Deutsch", URL: "/de/about", Active: true}, prepared.Switcher[1])
}

func TestSiteService_Prepare_UngroupedSwitcherHasOnlyCurrent(t *testing.T) {
	svc := newTestSiteService("en")

	prepared, err := svc.Prepare(context.Background(), PrepareRequest{
		CurrentURL: "/contact",
		Pages:      []PageInput{{URL: "/contact"}, {URL: "/about", GroupID: "about"}},
	})
	require.NoError(t, err)

	assert.Empty(t, prepared.PageLanguages)
	require.Len(t, prepared.Switcher, 1)
	assert.True(t, prepared.Switcher[0].Active)
	assert.Equal(t, "/contact", prepared.Switcher[0].URL)
}

func TestSiteService_Prepare_FrontMatter(t *testing.T) {
	svc := newTestSiteService("en")

	raw := "---\nTitle: Über uns\nLanguage: de\npid: about\nTemplate: wide\n---\nHallo"

	prepared, err := svc.Prepare(context.Background(), PrepareRequest{
		CurrentURL: "/de/about",
		Pages: []PageInput{
			{URL: "/about", Title: "About", GroupID: "about"},
			{URL: "/de/about", RawContent: raw},
		},
	})
	require.NoError(t, err)

	current := prepared.Current
	assert.Equal(t, "Über uns", current.Title)
	assert.Equal(t, "de", current.Language)
	assert.Equal(t, "about", current.GroupID)
	assert.Equal(t, "Hallo", current.Content)
	assert.Equal(t, "wide", current.Meta.Extra["template"])
	assert.Len(t, prepared.PageLanguages, 2)
}

func TestSiteService_Prepare_GroupIDsAreOpaque(t *testing.T) {
	svc := newTestSiteService("en")

	prepared, err := svc.Prepare(context.Background(), PrepareRequest{
		CurrentURL: "/a",
		Pages: []PageInput{
			{URL: "/a", RawContent: "---\npid: 007\n---\n"},
			{URL: "/b", RawContent: "---\nLanguage: de\npid: 7\n---\n"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "007", prepared.Current.GroupID)
	require.Len(t, prepared.PageLanguages, 1)
	assert.Equal(t, "/a", prepared.PageLanguages[0].URL)
	require.Len(t, prepared.Switcher, 1)
	assert.Equal(t, "/a", prepared.Switcher[0].URL)
}

func TestSiteService_Prepare_ExplicitFieldsWin(t *testing.T) {
	svc := newTestSiteService("en")

	prepared, err := svc.Prepare(context.Background(), PrepareRequest{
		CurrentURL: "/p",
		Pages: []PageInput{{
			URL:        "/p",
			Title:      "Explicit",
			Language:   "fr",
			RawContent: "---\nTitle: Parsed\nLanguage: de\n---\n",
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Explicit", prepared.Current.Title)
	assert.Equal(t, "fr", prepared.Current.Language)
}

func TestSiteService_Prepare_DefaultLanguage(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		request    string
		want       string
	}{
		{"configured", "de", "", "de"},
		{"request override", "de", "nl", "nl"},
		{"fallback", "", "", multilang.FallbackLanguage},
		{"blank request keeps configured", "de", "  ", "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSiteService(tt.configured)

			prepared, err := svc.Prepare(context.Background(), PrepareRequest{
				DefaultLanguage: tt.request,
				CurrentURL:      "/",
				Pages:           []PageInput{{URL: "/"}},
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, prepared.DefaultLanguage)
			assert.Equal(t, tt.want, prepared.Current.Language)
			assert.Equal(t, tt.want, prepared.Current.Meta.Language)
		})
	}
}

func TestSiteService_Prepare_Scope(t *testing.T) {
	svc := newTestSiteService("en")

	prepared, err := svc.Prepare(context.Background(), PrepareRequest{
		CurrentURL: "/b",
		Pages: []PageInput{
			{URL: "/a"},
			{URL: "/b", Title: "B"},
			{URL: "/c"},
		},
	})
	require.NoError(t, err)

	scope := prepared.Scope
	assert.Len(t, scope, 7)
	assert.Same(t, prepared.Current, scope[ScopeCurrentPage])
	assert.Equal(t, prepared.Pages, scope[ScopePages])
	assert.Equal(t, []string{"en"}, scope[multilang.VarLanguages])
	assert.Contains(t, scope, multilang.VarPageLanguages)

	// Inverted pairing: previous_page is the page after the current one.
	assert.Equal(t, "/c", prepared.Previous.URL)
	assert.Equal(t, "/a", prepared.Next.URL)

	meta, ok := scope[ScopeMeta].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "B", meta["title"])
	assert.Equal(t, "en", meta[multilang.MetaLanguage])
}

func TestSiteService_Prepare_AssignsUniqueKeys(t *testing.T) {
	svc := newTestSiteService("en")

	prepared, err := svc.Prepare(context.Background(), PrepareRequest{
		CurrentURL: "/a",
		Pages:      []PageInput{{URL: "/a"}, {URL: "/b"}},
	})
	require.NoError(t, err)

	require.Len(t, prepared.Pages, 2)
	assert.NotEmpty(t, prepared.Pages[0].Key)
	assert.NotEqual(t, prepared.Pages[0].Key, prepared.Pages[1].Key)
}

func TestSiteService_Prepare_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     PrepareRequest
		wantErr error
	}{
		{
			name:    "no pages",
			req:     PrepareRequest{CurrentURL: "/"},
			wantErr: domainerrors.ErrValidation,
		},
		{
			name:    "missing current url",
			req:     PrepareRequest{Pages: []PageInput{{URL: "/"}}},
			wantErr: domainerrors.ErrValidation,
		},
		{
			name:    "page without url",
			req:     PrepareRequest{CurrentURL: "/", Pages: []PageInput{{URL: "/"}, {Title: "x"}}},
			wantErr: domainerrors.ErrValidation,
		},
		{
			name:    "duplicate urls",
			req:     PrepareRequest{CurrentURL: "/", Pages: []PageInput{{URL: "/"}, {URL: "/"}}},
			wantErr: domainerrors.ErrValidation,
		},
		{
			name: "broken front matter",
			req: PrepareRequest{CurrentURL: "/", Pages: []PageInput{
				{URL: "/", RawContent: "---\nTitle: [unclosed\n---\n"},
			}},
			wantErr: domainerrors.ErrValidation,
		},
		{
			name: "list as language",
			req: PrepareRequest{CurrentURL: "/", Pages: []PageInput{
				{URL: "/", RawContent: "---\nLanguage: [a, b]\n---\n"},
			}},
			wantErr: domainerrors.ErrValidation,
		},
		{
			name:    "unknown current url",
			req:     PrepareRequest{CurrentURL: "/missing", Pages: []PageInput{{URL: "/"}}},
			wantErr: domainerrors.ErrNotFound,
		},
	}

	svc := newTestSiteService("en")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prepared, err := svc.Prepare(context.Background(), tt.req)
			assert.Nil(t, prepared)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSiteService_Prepare_ValidationDetails(t *testing.T) {
	svc := newTestSiteService("en")

	_, err := svc.Prepare(context.Background(), PrepareRequest{
		CurrentURL: "/",
		Pages:      []PageInput{{URL: "/"}, {}},
	})

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "pages[1].url")
}

func TestSiteService_Prepare_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Format: "json", Writer: &buf, Level: slog.LevelInfo})
	svc := NewSiteService("en", log.Logger)

	_, err := svc.Prepare(context.Background(), PrepareRequest{
		CurrentURL: "/",
		Pages:      []PageInput{{URL: "/"}},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"msg":"navigation prepared"`)
	assert.Contains(t, buf.String(), `"current":"/"`)
}

func TestSiteService_Headers(t *testing.T) {
	svc := newTestSiteService("en")

	headers := svc.Headers()
	keys := headers.Keys()
	assert.Contains(t, keys, multilang.MetaLanguage)
	assert.Contains(t, keys, multilang.MetaGroupID)
	assert.Contains(t, keys, "title")

	headers[0].Field = "changed"
	assert.NotEqual(t, "changed", svc.Headers()[0].Field)
}

func TestSiteService_DefaultLanguage(t *testing.T) {
	assert.Equal(t, "de", newTestSiteService(" de ").DefaultLanguage())
	assert.Equal(t, multilang.FallbackLanguage, newTestSiteService("").DefaultLanguage())
}
