package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHeaderRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listMetaHeaders",
		Method:      http.MethodGet,
		Path:        "/api/v1/headers",
		Summary:     "List meta headers",
		Description: "Returns the front-matter fields read from raw page content, in lookup order",
		Tags:        []string{"Pages"},
	}, s.handleListHeaders)
}

// === DTOs ===

// MetaHeader maps a meta key to the front-matter field it is read from.
type MetaHeader struct {
	Key   string `json:"key" doc:"Meta key" example:"group_id"`
	Field string `json:"field" doc:"Front-matter field name (case-insensitive)" example:"pid"`
}

// ListHeadersResponse lists the registered meta headers.
type ListHeadersResponse struct {
	Headers []MetaHeader `json:"headers" doc:"Registered headers; a key listed twice falls back to the later field"`
}

// ListHeadersOutput wraps the headers response for Huma.
type ListHeadersOutput struct {
	Body ListHeadersResponse
}

// === Handlers ===

func (s *Server) handleListHeaders(_ context.Context, _ *struct{}) (*ListHeadersOutput, error) {
	headers := s.site.Headers()

	resp := make([]MetaHeader, len(headers))
	for i, h := range headers {
		resp[i] = MetaHeader{Key: h.Key, Field: h.Field}
	}

	return &ListHeadersOutput{Body: ListHeadersResponse{Headers: resp}}, nil
}
