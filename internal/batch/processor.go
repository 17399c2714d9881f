// Package batch converts every report in a directory, one output file per input.
package batch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/receivables-xlsx/internal/fileutils"
	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/parser"
	"fjacquet/receivables-xlsx/internal/parsererror"
)

// InputExtensions are the file types picked up from the input directory.
var InputExtensions = []string{".pdf", ".txt"}

// ParserResolver returns the parser for an input file.
type ParserResolver interface {
	ParserForFile(path string) (parser.FullParser, error)
}

// FileResult is the outcome of one file.
type FileResult struct {
	InputFile  string
	OutputFile string
	Records    int
	Err        error
}

// Empty reports whether the file failed because nothing was recognized in it.
func (r FileResult) Empty() bool {
	return errors.Is(r.Err, parsererror.ErrEmptyExtraction)
}

// Summary collects the results of a batch run in input order.
type Summary struct {
	Files []FileResult
}

// Succeeded counts files that produced an output file.
func (s *Summary) Succeeded() int {
	n := 0
	for _, f := range s.Files {
		if f.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts files that produced no output, including empty ones.
func (s *Summary) Failed() int {
	return len(s.Files) - s.Succeeded()
}

// Empty counts files in which no record was recognized.
func (s *Summary) Empty() int {
	n := 0
	for _, f := range s.Files {
		if f.Empty() {
			n++
		}
	}
	return n
}

// Records is the total number of records written.
func (s *Summary) Records() int {
	n := 0
	for _, f := range s.Files {
		n += f.Records
	}
	return n
}

// Processor converts the files of a directory sequentially. A failing file is
// recorded in the summary and does not stop the run.
type Processor struct {
	resolver ParserResolver
	ext      string
	logger   logging.Logger
}

// NewProcessor creates a Processor writing files with extension ext ("xlsx" or "csv").
func NewProcessor(resolver ParserResolver, ext string, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if ext == "" {
		ext = "xlsx"
	}
	return &Processor{resolver: resolver, ext: strings.TrimPrefix(ext, "."), logger: logger}
}

// ProcessDirectory converts every supported file under inputDir into outputDir.
// An empty outputDir writes next to the inputs.
func (p *Processor) ProcessDirectory(inputDir, outputDir string) (*Summary, error) {
	start := time.Now()

	files, err := fileutils.ListFilesWithExtensions(inputDir, InputExtensions...)
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
			return nil, err
		}
	}

	p.logger.Info("Starting batch conversion",
		logging.Field{Key: "input_dir", Value: inputDir},
		logging.Field{Key: "output_dir", Value: outputDir},
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	summary := &Summary{Files: make([]FileResult, 0, len(files))}
	used := make(map[string]bool, len(files))
	for _, file := range files {
		dir := outputDir
		if dir == "" {
			dir = filepath.Dir(file)
		}
		out := uniquePath(filepath.Join(dir, fileutils.OutputFileName(file, p.ext)), used)
		summary.Files = append(summary.Files, p.processFile(file, out))
	}

	p.logger.Info("Batch conversion finished",
		logging.Field{Key: "succeeded", Value: summary.Succeeded()},
		logging.Field{Key: "failed", Value: summary.Failed()},
		logging.Field{Key: "empty", Value: summary.Empty()},
		logging.Field{Key: "records", Value: summary.Records()},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return summary, nil
}

func (p *Processor) processFile(inputFile, outputFile string) FileResult {
	result := FileResult{InputFile: inputFile, OutputFile: outputFile}
	logger := p.logger.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})

	fp, err := p.resolver.ParserForFile(inputFile)
	if err != nil {
		result.Err = err
		logger.WithError(err).Warn("Skipping file")
		return result
	}

	count, err := fp.ConvertFile(inputFile, outputFile)
	if err != nil {
		result.Err = err
		if result.Empty() {
			logger.WithError(err).Warn("No records recognized in file")
		} else {
			logger.WithError(err).Error("Failed to convert file")
		}
		return result
	}

	result.Records = count
	logger.Info("Converted file", logging.Field{Key: logging.FieldCount, Value: count})
	return result
}

// uniquePath appends _2, _3, ... to the base name until path is unused in this run.
func uniquePath(path string, used map[string]bool) string {
	candidate := path
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 2; used[candidate]; i++ {
		candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}
	used[candidate] = true
	return candidate
}
