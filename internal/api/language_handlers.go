package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/tilboerner/pico-multilanguage/internal/errors"
	"github.com/tilboerner/pico-multilanguage/internal/langtag"
)

func (s *Server) registerLanguageRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getLanguage",
		Method:      http.MethodGet,
		Path:        "/api/v1/languages/{code}",
		Summary:     "Describe language",
		Description: "Returns the canonical BCP 47 form and display label of a language code or English language name",
		Tags:        []string{"Languages"},
	}, s.handleGetLanguage)
}

// === DTOs ===

// GetLanguageInput contains parameters for describing a language.
type GetLanguageInput struct {
	Code string `path:"code" maxLength:"64" doc:"Language code or English name, e.g. de, pt-br or German"`
}

// LanguageResponse describes one language code.
type LanguageResponse struct {
	Code      string `json:"code" doc:"Code as requested"`
	Canonical string `json:"canonical" doc:"Canonical BCP 47 tag"`
	Base      string `json:"base" doc:"Primary language subtag"`
	Label     string `json:"label" doc:"Language name in that language"`
}

// LanguageOutput wraps the language response for Huma.
type LanguageOutput struct {
	Body LanguageResponse
}

// === Handlers ===

func (s *Server) handleGetLanguage(_ context.Context, input *GetLanguageInput) (*LanguageOutput, error) {
	canonical, ok := langtag.Lookup(input.Code)
	if !ok {
		return nil, toAPIError(domainerrors.Validationf("%q is neither a language tag nor a known language name", input.Code))
	}

	return &LanguageOutput{
		Body: LanguageResponse{
			Code:      input.Code,
			Canonical: canonical,
			Base:      langtag.Base(canonical),
			Label:     langtag.Label(canonical),
		},
	}, nil
}
