// Package reportparser turns the lines of a page-oriented receivables report into
// normalized detail records. A party header line sets the customer context; each
// following detail line becomes one record carrying a copy of that context.
package reportparser

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"fjacquet/receivables-xlsx/internal/currencyutils"
	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/models"
	"fjacquet/receivables-xlsx/internal/parsererror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultMinLineLength is the shortest line, in runes, that is worth classifying.
const DefaultMinLineLength = 5

var amountFieldNames = [5]string{"document_amount", "interest", "penalty", "fee", "total_amount"}

// Options configures an Extractor.
type Options struct {
	// MinLineLength skips shorter trimmed lines without classifying them.
	MinLineLength int
	// GenericFallback enables the loose detail pattern for unknown kind tags.
	GenericFallback bool
	// NoiseMarkers are added to DefaultNoiseMarkers.
	NoiseMarkers []string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MinLineLength:   DefaultMinLineLength,
		GenericFallback: true,
	}
}

// Stats counts what a scan saw.
type Stats struct {
	Pages            int
	Lines            int
	Blank            int
	Short            int
	Noise            int
	PartyHeaders     int
	Orphaned         int
	Unclassified     int
	MalformedAmounts int
	ByVariant        map[models.Variant]int
}

// Result is the output of a successful scan.
type Result struct {
	ScanID  string
	Records []models.DetailRecord
	Stats   Stats
}

// Count returns the number of extracted records.
func (r *Result) Count() int {
	return len(r.Records)
}

// Total sums the total amount of every record.
func (r *Result) Total() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range r.Records {
		total = total.Add(rec.TotalAmount)
	}
	return total
}

// Extractor scans pages of report text. It holds only immutable configuration, so
// one Extractor can serve concurrent scans; every call to Extract gets its own
// context tracker.
type Extractor struct {
	registry *Registry
	minLen   int
	logger   logging.Logger
}

// NewExtractor creates an Extractor. A nil logger falls back to the default logger.
func NewExtractor(opts Options, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if opts.MinLineLength < 0 {
		opts.MinLineLength = 0
	}
	return &Extractor{
		registry: NewRegistry(NewNoiseFilter(opts.NoiseMarkers...), opts.GenericFallback),
		minLen:   opts.MinLineLength,
		logger:   logger,
	}
}

// Registry exposes the pattern registry used by this extractor.
func (e *Extractor) Registry() *Registry {
	return e.registry
}

// ExtractTexts splits each page text into lines and scans them.
func (e *Extractor) ExtractTexts(texts []string) (*Result, error) {
	return e.Extract(models.PagesFromTexts(texts))
}

// Extract scans pages in order and returns one record per recognized detail line.
// It fails with a *parsererror.EmptyExtractionError when nothing was extracted.
func (e *Extractor) Extract(pages []models.Page) (*Result, error) {
	start := time.Now()
	s := &scan{
		extractor: e,
		id:        uuid.NewString(),
		stats:     Stats{ByVariant: make(map[models.Variant]int)},
	}
	s.log = e.logger.WithField(logging.FieldScanID, s.id)

	for _, page := range pages {
		s.stats.Pages++
		for i, raw := range page.Lines {
			s.stats.Lines++
			s.step(page.Number, i+1, raw)
		}
	}

	s.log.Debug("Scan finished",
		logging.Field{Key: logging.FieldPages, Value: s.stats.Pages},
		logging.Field{Key: logging.FieldCount, Value: len(s.records)},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	if len(s.records) == 0 {
		return nil, &parsererror.EmptyExtractionError{
			Pages:        s.stats.Pages,
			Lines:        s.stats.Lines,
			Unclassified: s.stats.Unclassified,
		}
	}

	return &Result{ScanID: s.id, Records: s.records, Stats: s.stats}, nil
}

// LineReport describes how one line was classified.
type LineReport struct {
	Page  int
	Line  int
	Text  string
	Class LineClass
	// Orphaned marks a detail line seen before any party header.
	Orphaned bool
}

// Inspect classifies every line without building records.
func (e *Extractor) Inspect(pages []models.Page) []LineReport {
	var (
		reports []LineReport
		tracker ContextTracker
	)
	for _, page := range pages {
		for i, raw := range page.Lines {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			report := LineReport{Page: page.Number, Line: i + 1, Text: line}
			if e.tooShort(line) {
				report.Class = ClassShort
				reports = append(reports, report)
				continue
			}
			m := e.registry.Classify(line)
			report.Class = m.Class
			if m.Class == ClassParty {
				tracker.Set(m.Party)
			}
			if _, ok := tracker.Current(); m.Class.IsDetail() && !ok {
				report.Orphaned = true
			}
			reports = append(reports, report)
		}
	}
	return reports
}

func (e *Extractor) tooShort(line string) bool {
	return utf8.RuneCountInString(line) < e.minLen
}

// scan is the per-document state of one Extract call.
type scan struct {
	extractor *Extractor
	id        string
	tracker   ContextTracker
	records   []models.DetailRecord
	stats     Stats
	log       logging.Logger
}

func (s *scan) step(pageNum, lineNum int, raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		s.stats.Blank++
		return
	}
	if s.extractor.tooShort(line) {
		s.stats.Short++
		return
	}

	m := s.extractor.registry.Classify(line)
	switch m.Class {
	case ClassNoise:
		s.stats.Noise++
	case ClassParty:
		s.stats.PartyHeaders++
		s.tracker.Set(m.Party)
		s.log.Debug("Party context set",
			logging.Field{Key: logging.FieldPartyID, Value: m.Party.PartyID},
			logging.Field{Key: logging.FieldPage, Value: pageNum},
			logging.Field{Key: logging.FieldLine, Value: lineNum})
	case ClassBank, ClassCard, ClassGeneric:
		party, ok := s.tracker.Current()
		if !ok {
			s.stats.Orphaned++
			s.log.Debug("Dropping detail line without party context",
				logging.Field{Key: logging.FieldPage, Value: pageNum},
				logging.Field{Key: logging.FieldLine, Value: lineNum})
			return
		}
		rec := s.buildRecord(party, m, pageNum, lineNum)
		s.stats.ByVariant[rec.Variant]++
		s.records = append(s.records, rec)
	default:
		s.stats.Unclassified++
		s.log.Debug("Unrecognized line",
			logging.Field{Key: logging.FieldPage, Value: pageNum},
			logging.Field{Key: logging.FieldLine, Value: lineNum})
	}
}

func (s *scan) buildRecord(party models.PartyContext, m Match, pageNum, lineNum int) models.DetailRecord {
	d := m.Detail
	rec := models.DetailRecord{
		Party:      party,
		DocumentID: d.DocumentID,
		IssueDate:  d.IssueDate,
		DueDate:    d.DueDate,
		Kind:       models.Kind(d.Kind),
		BillingRef: d.BillingRef,
		Page:       pageNum,
		Line:       lineNum,
	}

	switch m.Class {
	case ClassBank:
		rec.Variant = models.VariantBank
	case ClassCard:
		rec.Variant = models.VariantCard
		rec.BillingRef = ""
	default:
		rec.Variant = models.VariantGeneric
	}

	aging, err := strconv.Atoi(d.Aging)
	if err != nil {
		s.log.WithError(err).Warn("Aging value out of range, using 0",
			logging.Field{Key: logging.FieldDocumentID, Value: d.DocumentID})
		aging = 0
	}
	rec.Aging = aging

	amounts := [5]*decimal.Decimal{&rec.DocumentAmount, &rec.Interest, &rec.Penalty, &rec.Fee, &rec.TotalAmount}
	for i, raw := range d.Amounts {
		*amounts[i] = s.amount(amountFieldNames[i], raw, d.DocumentID, pageNum, lineNum)
	}
	return rec
}

// amount normalizes one amount field; a malformed value becomes zero and is counted.
func (s *scan) amount(field, raw, documentID string, pageNum, lineNum int) decimal.Decimal {
	v, err := currencyutils.ParseBRL(raw)
	if err == nil {
		return v
	}
	s.stats.MalformedAmounts++
	s.log.WithError(&parsererror.MalformedAmountError{Field: field, Value: raw, Err: err}).
		Warn("Malformed amount, using 0",
			logging.Field{Key: logging.FieldDocumentID, Value: documentID},
			logging.Field{Key: logging.FieldAmount, Value: raw},
			logging.Field{Key: logging.FieldPage, Value: pageNum},
			logging.Field{Key: logging.FieldLine, Value: lineNum})
	return decimal.Zero
}
