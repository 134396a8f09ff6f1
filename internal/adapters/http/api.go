package http

import (
	"errors"
	"net/http"

	"github.com/aretw0/vignes/pkg/domain"
	"github.com/oapi-codegen/runtime"
)

// Error kinds reported in API error bodies.
const (
	KindParse        = "parse"
	KindInvalidInput = "invalid_input"
	KindNonFinite    = "non_finite"
	KindInternal     = "internal"
)

// ErrorResponse is the body of every API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// ExplainResponse is the body of GET /api/v1/explain.
type ExplainResponse struct {
	Result    domain.Result    `json:"result"`
	Breakdown domain.Breakdown `json:"breakdown"`
}

// bindQuery binds the xa and t query parameters the way generated servers do.
func bindQuery(r *http.Request) (domain.Query, error) {
	var q domain.Query
	params := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, true, "xa", params, &q.Xa); err != nil {
		return domain.Query{}, &domain.ParseError{Field: "xa", Raw: params.Get("xa"), Err: err}
	}
	if err := runtime.BindQueryParameter("form", true, true, "t", params, &q.T); err != nil {
		return domain.Query{}, &domain.ParseError{Field: "t", Raw: params.Get("t"), Err: err}
	}
	return q, nil
}

func (s *Server) apiError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrParse):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: KindParse})
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: KindInvalidInput})
	default:
		s.Logger.ErrorContext(r.Context(), "api estimate failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Kind: KindInternal})
	}
}

// GetEstimate handles GET /api/v1/estimate.
func (s *Server) GetEstimate(w http.ResponseWriter, r *http.Request) {
	q, err := bindQuery(r)
	if err != nil {
		s.apiError(w, r, err)
		return
	}

	res, err := s.Estimator.Estimate(r.Context(), q)
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	if !res.Finite() {
		s.nonFinite(w, r, q)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetExplain handles GET /api/v1/explain.
func (s *Server) GetExplain(w http.ResponseWriter, r *http.Request) {
	q, err := bindQuery(r)
	if err != nil {
		s.apiError(w, r, err)
		return
	}

	res, b, err := s.Estimator.Explain(r.Context(), q)
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	if !res.Finite() || !b.Finite() {
		s.nonFinite(w, r, q)
		return
	}
	writeJSON(w, http.StatusOK, ExplainResponse{Result: res, Breakdown: b})
}

// GetConstants handles GET /api/v1/constants.
func (s *Server) GetConstants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Estimator.Constants())
}

// nonFinite answers 422 for estimates JSON cannot encode.
func (s *Server) nonFinite(w http.ResponseWriter, r *http.Request, q domain.Query) {
	s.Logger.DebugContext(r.Context(), "non-finite estimate", "xa", q.Xa, "t", q.T)
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: domain.ErrNonFinite.Error(), Kind: KindNonFinite})
}
