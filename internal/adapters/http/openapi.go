package http

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// apiSpec is the parsed and validated OpenAPI document of the JSON API.
type apiSpec struct {
	doc *openapi3.T
}

func loadSpec() (*apiSpec, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}
	return &apiSpec{doc: doc}, nil
}

// Version returns info.version of the document.
func (a *apiSpec) Version() string {
	if a == nil || a.doc == nil || a.doc.Info == nil {
		return "unknown"
	}
	return a.doc.Info.Version
}

// GetSpec handles GET /openapi.yaml.
func (s *Server) GetSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/yaml")
	if _, err := w.Write(rawSpec); err != nil {
		slog.Error("Failed to write OpenAPI spec", "error", err)
	}
}
