package http

import (
	"strconv"
	"strings"

	"github.com/aretw0/vignes/pkg/domain"
)

// parseFloat reads a form or query value as a float64.
// Surrounding blanks are ignored and a decimal comma is accepted ("0,5").
func parseFloat(field, raw string) (float64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, &domain.ParseError{Field: field, Raw: raw, Err: err}
	}
	return v, nil
}

// parseQuery reads the Xa and T values with the given lookup function.
func parseQuery(get func(string) string) (domain.Query, error) {
	xa, err := parseFloat("Xa", get("Xa"))
	if err != nil {
		return domain.Query{}, err
	}
	t, err := parseFloat("T", get("T"))
	if err != nil {
		return domain.Query{}, err
	}
	return domain.Query{Xa: xa, T: t}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
