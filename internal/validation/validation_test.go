package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/receivables-xlsx/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPath(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	assert.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	tests := []struct {
		name        string
		path        string
		errContains string
	}{
		{name: "file", path: testFile},
		{name: "directory", path: tmpDir},
		{name: "non-existent path", path: filepath.Join(tmpDir, "missing.pdf"), errContains: "path does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidPath(tt.path)
			if tt.errContains != "" {
				assert.ErrorContains(t, err, tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidInputFile(t *testing.T) {
	tmpDir := t.TempDir()
	pdf := filepath.Join(tmpDir, "aging.PDF")
	txt := filepath.Join(tmpDir, "aging.txt")
	doc := filepath.Join(tmpDir, "aging.docx")
	for _, f := range []string{pdf, txt, doc} {
		assert.NoError(t, os.WriteFile(f, []byte("x"), 0600))
	}

	assert.NoError(t, validation.IsValidInputFile(pdf))
	assert.NoError(t, validation.IsValidInputFile(txt))
	assert.ErrorContains(t, validation.IsValidInputFile(doc), "unsupported input file type")
	assert.ErrorContains(t, validation.IsValidInputFile(tmpDir), "use the batch command")
	assert.ErrorContains(t, validation.IsValidInputFile(filepath.Join(tmpDir, "none.pdf")), "path does not exist")
}

func TestIsValidInputDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "aging.pdf")
	assert.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.NoError(t, validation.IsValidInputDirectory(tmpDir))
	assert.ErrorContains(t, validation.IsValidInputDirectory(file), "not a directory")
	assert.ErrorContains(t, validation.IsValidInputDirectory(filepath.Join(tmpDir, "nope")), "path does not exist")
}

func TestIsValidOutputFormat(t *testing.T) {
	tests := []struct {
		format      string
		expectError bool
	}{
		{"xlsx", false},
		{"csv", false},
		{"XLSX", false},
		{"json", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := validation.IsValidOutputFormat(tt.format)
			if tt.expectError {
				assert.ErrorContains(t, err, "unsupported output format")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidOutputPath(t *testing.T) {
	tmpDir := t.TempDir()

	assert.NoError(t, validation.IsValidOutputPath(""))
	assert.NoError(t, validation.IsValidOutputPath(filepath.Join(tmpDir, "out.xlsx")))
	assert.NoError(t, validation.IsValidOutputPath(filepath.Join(tmpDir, "out.csv")))
	assert.ErrorContains(t, validation.IsValidOutputPath(filepath.Join(tmpDir, "out.json")), "unsupported output format")
	assert.ErrorContains(t, validation.IsValidOutputPath(filepath.Join(tmpDir, "out")), "no extension")
	assert.ErrorContains(t, validation.IsValidOutputPath(tmpDir), "is a directory")
}
