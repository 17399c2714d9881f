package reportparser

import (
	"regexp"
	"strings"

	"fjacquet/receivables-xlsx/internal/models"
)

// LineClass is the outcome of classifying one line.
type LineClass string

const (
	ClassShort        LineClass = "short"
	ClassNoise        LineClass = "noise"
	ClassParty        LineClass = "party"
	ClassBank         LineClass = "bank"
	ClassCard         LineClass = "card"
	ClassGeneric      LineClass = "generic"
	ClassUnclassified LineClass = "unclassified"
)

// IsDetail reports whether c is one of the detail-line classes.
func (c LineClass) IsDetail() bool {
	return c == ClassBank || c == ClassCard || c == ClassGeneric
}

// DetailFields holds the raw, still textual fields of a detail line.
type DetailFields struct {
	DocumentID string
	IssueDate  string
	DueDate    string
	Aging      string
	Kind       string
	BillingRef string
	// Amounts in column order: document, interest, penalty, fee, total.
	Amounts [5]string
}

// Match is the result of Registry.Classify.
type Match struct {
	Class  LineClass
	Party  models.PartyContext
	Detail DetailFields
}

const (
	docIDExpr  = `(\d+(?:\.\d+)+)`
	dateExpr   = `(\d{2}/\d{2}/\d{4})`
	agingExpr  = `(\d+)`
	amountExpr = `([\d.,]+)`
)

var (
	partyHeaderRe = regexp.MustCompile(`^(\d+)\s+(.+?)\s+\((\d{2})\)\s?(\d{4,5})[-\s]?(\d{4})\s+(.+)$`)

	detailPrefix = `^` + docIDExpr + `\s+` + dateExpr + `\s+` + dateExpr + `\s+` + agingExpr + `\s+`
	amountsExpr  = strings.Repeat(`\s+`+amountExpr, 5) + `$`

	bankDetailRe    = regexp.MustCompile(detailPrefix + `(` + string(models.KindBank) + `)\s+([\w/-]+)` + amountsExpr)
	cardDetailRe    = regexp.MustCompile(detailPrefix + `(` + string(models.KindCard) + `)` + amountsExpr)
	genericDetailRe = regexp.MustCompile(detailPrefix + `([A-Za-z0-9]+)\s+([\w/-]+)` + amountsExpr)
)

// pattern is one entry of the registry: a class and the function that tries it.
type pattern struct {
	class LineClass
	match func(line string) (Match, bool)
}

// Registry classifies lines against an ordered list of patterns; the first match wins.
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	patterns []pattern
	noise    *NoiseFilter
}

// NewRegistry builds the registry in precedence order: noise, party header, bank
// detail, card detail and, when generic is true, the generic detail fallback.
func NewRegistry(noise *NoiseFilter, generic bool) *Registry {
	if noise == nil {
		noise = NewNoiseFilter()
	}
	r := &Registry{noise: noise}
	r.patterns = []pattern{
		{class: ClassNoise, match: r.matchNoise},
		{class: ClassParty, match: matchPartyHeader},
		{class: ClassBank, match: detailMatcher(ClassBank, bankDetailRe, true)},
		{class: ClassCard, match: detailMatcher(ClassCard, cardDetailRe, false)},
	}
	if generic {
		r.patterns = append(r.patterns, pattern{
			class: ClassGeneric,
			match: detailMatcher(ClassGeneric, genericDetailRe, true),
		})
	}
	return r
}

// Classes lists the pattern classes in evaluation order.
func (r *Registry) Classes() []LineClass {
	out := make([]LineClass, 0, len(r.patterns))
	for _, p := range r.patterns {
		out = append(out, p.class)
	}
	return out
}

// Noise returns the noise filter the registry checks first.
func (r *Registry) Noise() *NoiseFilter {
	return r.noise
}

// Classify matches a trimmed, non-empty line. Lines that match nothing are
// ClassUnclassified.
func (r *Registry) Classify(line string) Match {
	for _, p := range r.patterns {
		if m, ok := p.match(line); ok {
			return m
		}
	}
	return Match{Class: ClassUnclassified}
}

func (r *Registry) matchNoise(line string) (Match, bool) {
	if r.noise.IsNoise(line) {
		return Match{Class: ClassNoise}, true
	}
	return Match{}, false
}

func matchPartyHeader(line string) (Match, bool) {
	m := partyHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return Match{}, false
	}
	party, err := models.NewPartyContext(m[1], m[2], models.FormatPhone(m[3], m[4], m[5]), m[6])
	if err != nil {
		return Match{}, false
	}
	return Match{Class: ClassParty, Party: party}, true
}

// detailMatcher builds a matcher for a detail regexp. Every detail regexp captures
// document id, issue date, due date, aging and kind, then an optional reference,
// then the five amounts.
func detailMatcher(class LineClass, re *regexp.Regexp, hasRef bool) func(string) (Match, bool) {
	return func(line string) (Match, bool) {
		m := re.FindStringSubmatch(line)
		if m == nil {
			return Match{}, false
		}
		d := DetailFields{
			DocumentID: m[1],
			IssueDate:  m[2],
			DueDate:    m[3],
			Aging:      m[4],
			Kind:       strings.ToUpper(m[5]),
		}
		next := 6
		if hasRef {
			d.BillingRef = m[6]
			next = 7
		}
		copy(d.Amounts[:], m[next:next+5])
		return Match{Class: class, Detail: d}, true
	}
}
