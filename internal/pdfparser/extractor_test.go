package pdfparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPages(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single page", "a\nb", []string{"a\nb"}},
		{"trailing form feed", "a\fb\f", []string{"a", "b"}},
		{"empty middle page", "a\f\fc", []string{"a", "", "c"}},
		{"empty document", "", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPages(tt.text))
		})
	}
}

func TestTextExtractor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("page one\fpage two\f"), 0600))

	pages, err := NewTextExtractor().ExtractPages(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"page one", "page two"}, pages)

	_, err = NewTextExtractor().ExtractPages(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestNativePDFExtractor_RejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf document at all"), 0600))

	pages, err := NewNativePDFExtractor().ExtractPages(path)
	assert.Error(t, err)
	assert.Nil(t, pages)
}

func TestRealPDFExtractor(t *testing.T) {
	assert.Equal(t, DefaultPdftotextPath, NewRealPDFExtractor("").Path)

	e := NewRealPDFExtractor(filepath.Join(t.TempDir(), "no-such-pdftotext"))
	_, err := e.ExtractPages("whatever.pdf")
	assert.Error(t, err)
}

func TestMockPDFExtractor(t *testing.T) {
	mock := NewMockPDFExtractor([]string{"a", "b"}, nil)
	pages, err := mock.ExtractPages("x.pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, pages)
	assert.Equal(t, []string{"x.pdf"}, mock.Calls)

	boom := errors.New("boom")
	_, err = NewMockPDFExtractor(nil, boom).ExtractPages("y.pdf")
	assert.ErrorIs(t, err, boom)
}
