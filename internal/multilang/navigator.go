package multilang

import (
	"github.com/tilboerner/pico-multilanguage/internal/domain"
)

// NavigationContext is the page list of one request together with the page
// being served and its neighbours. Current, Previous and Next point into
// Pages or are nil.
type NavigationContext struct {
	Pages    []*domain.PageRecord
	Current  *domain.PageRecord
	Previous *domain.PageRecord
	Next     *domain.PageRecord
}

// FilterToCurrentLanguage keeps only the pages in the current page's
// language and recomputes the neighbours from that subset.
//
// The neighbour naming is inherited and inverted: Previous receives the page
// listed right after Current, Next the page right before it.
//
// Without a current page (or one without a language) there is nothing to
// filter to: Pages stays untouched and both neighbours are cleared. If
// Current is not among the filtered pages, both neighbours are nil.
func FilterToCurrentLanguage(nav *NavigationContext) {
	if nav == nil {
		return
	}

	nav.Previous, nav.Next = nil, nil

	current := nav.Current
	if current == nil || current.Language == "" {
		return
	}

	filtered := make([]*domain.PageRecord, 0, len(nav.Pages))
	pos := -1
	for _, page := range nav.Pages {
		if page == nil || page.Language != current.Language {
			continue
		}
		// Identity, not equality: distinct records may hold equal fields.
		if page == current {
			pos = len(filtered)
		}
		filtered = append(filtered, page)
	}
	nav.Pages = filtered

	if pos < 0 {
		return
	}
	if pos+1 < len(filtered) {
		nav.Previous = filtered[pos+1]
	}
	if pos > 0 {
		nav.Next = filtered[pos-1]
	}
}
