package http

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"net/url"

	"github.com/aretw0/vignes/internal/docs"
	"github.com/aretw0/vignes/pkg/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templateFS embed.FS

type pages struct {
	tmpl        map[string]*template.Template
	explanation template.HTML
}

var pageNames = []string{"home.html", "calcul.html", "result.html", "explanation.html"}

var funcs = template.FuncMap{
	"sci": func(v float64) string { return fmt.Sprintf("%.6e", v) },
	"fixed": func(v float64) string {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Sprint(v)
		}
		return fmt.Sprintf("%.6f", v)
	},
	"pct": func(v float64) string { return fmt.Sprintf("%.3f", v) },
}

func loadPages() (*pages, error) {
	p := &pages{tmpl: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		p.tmpl[name] = t
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(docs.Explanation), &buf); err != nil {
		return nil, fmt.Errorf("failed to render explanation: %w", err)
	}
	// The source is an embedded document, not user input.
	p.explanation = template.HTML(buf.String())
	return p, nil
}

// calculView is the data of the input form.
type calculView struct {
	Xa    string
	T     string
	Error string
}

// resultView is the data of the result page.
type resultView struct {
	Result    *domain.Result
	Breakdown *domain.Breakdown
	Error     string
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.tmpl[name].Execute(&buf, data); err != nil {
		s.Logger.ErrorContext(r.Context(), "template render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home.html", nil)
}

// CalculForm handles GET /calcul.
func (s *Server) CalculForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "calcul.html", calculView{})
}

// CalculSubmit handles POST /calcul. Valid numbers are redirected to /result;
// domain validation happens there.
func (s *Server) CalculSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "calcul.html", calculView{Error: domain.UserMessage(err)})
		return
	}

	q, err := parseQuery(r.PostForm.Get)
	if err != nil {
		s.Logger.DebugContext(r.Context(), "form rejected", "error", err)
		s.render(w, r, http.StatusBadRequest, "calcul.html", calculView{
			Xa:    r.PostForm.Get("Xa"),
			T:     r.PostForm.Get("T"),
			Error: domain.UserMessage(err),
		})
		return
	}

	target := url.URL{Path: "/result", RawQuery: url.Values{
		"Xa": {formatFloat(q.Xa)},
		"T":  {formatFloat(q.T)},
	}.Encode()}
	http.Redirect(w, r, target.String(), http.StatusSeeOther)
}

// Result handles GET /result.
func (s *Server) Result(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q, err := parseQuery(query.Get)
	if err != nil {
		s.render(w, r, http.StatusBadRequest, "result.html", resultView{Error: domain.UserMessage(err)})
		return
	}

	res, b, err := s.Estimator.Explain(r.Context(), q)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidInput) {
			status = http.StatusUnprocessableEntity
		} else {
			s.Logger.ErrorContext(r.Context(), "estimate failed", "error", err)
		}
		s.render(w, r, status, "result.html", resultView{Error: domain.UserMessage(err)})
		return
	}

	s.render(w, r, http.StatusOK, "result.html", resultView{Result: &res, Breakdown: &b})
}

// Explain handles GET /explain.
func (s *Server) Explain(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "explanation.html", s.pages.explanation)
}
