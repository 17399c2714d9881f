package reportparser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultNoiseMarkers are the line prefixes of known report artifacts: totals, running
// headers and column banners.
var DefaultNoiseMarkers = []string{
	"TOTAL",
	"TOTAIS",
	"SUBTOTAL",
	"SUB-TOTAL",
	"SALDO",
	"PAGINA",
	"PÁGINA",
	"PAG.",
	"PÁG.",
	"PAGE",
	"RELATORIO",
	"RELATÓRIO",
	"CLIENTE",
	"CÓDIGO",
	"CODIGO",
	"DOCUMENTO",
	"EMISSAO",
	"EMISSÃO",
	"PERIODO",
	"PERÍODO",
	"DATA BASE",
	"TITULOS",
	"TÍTULOS",
}

// separatorRule matches rulers such as "-----", "=====" or "_ _ _ _".
var separatorRule = regexp.MustCompile(`^[-=_*.·#~\s]+$`)

// NoiseFilter recognizes report artifacts that must be discarded.
type NoiseFilter struct {
	markers []string
}

// NewNoiseFilter builds a filter from DefaultNoiseMarkers plus extra markers.
// Markers compare case-insensitively against the start of a line.
func NewNoiseFilter(extra ...string) *NoiseFilter {
	seen := make(map[string]bool)
	f := &NoiseFilter{}
	for _, m := range append(append([]string{}, DefaultNoiseMarkers...), extra...) {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		f.markers = append(f.markers, m)
	}
	return f
}

// Markers returns the active markers, normalized to upper case.
func (f *NoiseFilter) Markers() []string {
	out := make([]string, len(f.markers))
	copy(out, f.markers)
	return out
}

// IsNoise reports whether a trimmed line is a separator rule or starts with a marker.
// A marker only matches on a word boundary, so "TOTAL" does not match "TOTALIZADOR".
func (f *NoiseFilter) IsNoise(line string) bool {
	if separatorRule.MatchString(line) {
		return true
	}
	upper := strings.ToUpper(line)
	for _, m := range f.markers {
		if !strings.HasPrefix(upper, m) {
			continue
		}
		rest := upper[len(m):]
		if rest == "" {
			return true
		}
		r, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
