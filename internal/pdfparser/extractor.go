package pdfparser

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultPdftotextPath is the pdftotext binary looked up on PATH.
const DefaultPdftotextPath = "pdftotext"

// formFeed separates pages in pdftotext output and in plain-text reports.
const formFeed = "\f"

// PDFExtractor returns the text of a document, one string per page.
// Implementations are swapped for tests and for different text sources.
type PDFExtractor interface {
	ExtractPages(path string) ([]string, error)
}

// NativePDFExtractor reads the PDF text layer in-process with ledongthuc/pdf.
// Words of a row are joined with single spaces, one row per line.
type NativePDFExtractor struct{}

// NewNativePDFExtractor creates a NativePDFExtractor.
func NewNativePDFExtractor() *NativePDFExtractor {
	return &NativePDFExtractor{}
}

// ExtractPages returns one string per page. Pages without content yield "" so that
// page numbers stay aligned with the document.
func (e *NativePDFExtractor) ExtractPages(path string) (pages []string, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf reader crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	n := r.NumPage()
	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", i, err)
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, w := range row.Content {
				words = append(words, w.S)
			}
			lines = append(lines, strings.Join(words, " "))
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages, nil
}

// RealPDFExtractor runs the external pdftotext command in layout mode.
type RealPDFExtractor struct {
	Path string
}

// NewRealPDFExtractor creates a RealPDFExtractor. An empty path uses pdftotext from PATH.
func NewRealPDFExtractor(path string) *RealPDFExtractor {
	if path == "" {
		path = DefaultPdftotextPath
	}
	return &RealPDFExtractor{Path: path}
}

// ExtractPages runs pdftotext and splits its output on form feeds.
func (e *RealPDFExtractor) ExtractPages(pdfPath string) ([]string, error) {
	cmd := exec.Command(e.Path, "-layout", "-enc", "UTF-8", pdfPath, "-") // #nosec G204 -- binary path comes from configuration
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("pdftotext failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}
	return SplitPages(string(out)), nil
}

// TextExtractor reads reports that were already converted to plain text.
type TextExtractor struct{}

// NewTextExtractor creates a TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractPages reads the file and splits it on form feeds.
func (e *TextExtractor) ExtractPages(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, err
	}
	return SplitPages(string(data)), nil
}

// SplitPages splits text on form feeds. A trailing form feed does not start a page.
func SplitPages(text string) []string {
	pages := strings.Split(text, formFeed)
	if len(pages) > 1 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	return pages
}

// MockPDFExtractor returns fixed pages or a fixed error.
type MockPDFExtractor struct {
	MockPages []string
	MockErr   error
	Calls     []string
}

// NewMockPDFExtractor creates a new MockPDFExtractor with the given mock data.
func NewMockPDFExtractor(mockPages []string, mockErr error) *MockPDFExtractor {
	return &MockPDFExtractor{
		MockPages: mockPages,
		MockErr:   mockErr,
	}
}

// ExtractPages records the call and returns the mock data.
func (e *MockPDFExtractor) ExtractPages(path string) ([]string, error) {
	e.Calls = append(e.Calls, path)
	if e.MockErr != nil {
		return nil, e.MockErr
	}
	return e.MockPages, nil
}
