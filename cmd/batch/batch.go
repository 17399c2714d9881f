// Package batch handles batch processing of files
package batch

import (
	"errors"
	"fmt"

	"fjacquet/receivables-xlsx/cmd/root"
	"fjacquet/receivables-xlsx/internal/batch"
	"fjacquet/receivables-xlsx/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process reports from a directory",
	Long: `Batch process files from an input directory and write one spreadsheet per report
to another directory (or next to the inputs when -o is omitted).

Every .pdf and .txt file is converted independently. Files that cannot be read or in
which no record is recognized are reported and skipped; the command only fails when
no file could be converted.

Example:
  receivables-xlsx batch -i reports/ -o spreadsheets/`,
	RunE: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return errors.New("container not initialized")
	}

	inputDir := root.SharedFlags.Input
	if inputDir == "" {
		return errors.New("input directory must be specified with --input")
	}

	if err := validation.IsValidInputDirectory(inputDir); err != nil {
		return err
	}

	processor := batch.NewProcessor(appContainer, appContainer.GetConfig().Export.Format, appContainer.GetLogger())
	summary, err := processor.ProcessDirectory(inputDir, root.SharedFlags.Output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range summary.Files {
		switch {
		case f.Err == nil:
			_, _ = fmt.Fprintf(out, "OK    %s -> %s (%d records)\n", f.InputFile, f.OutputFile, f.Records)
		case f.Empty():
			_, _ = fmt.Fprintf(out, "EMPTY %s: %v\n", f.InputFile, f.Err)
		default:
			_, _ = fmt.Fprintf(out, "FAIL  %s: %v\n", f.InputFile, f.Err)
		}
	}
	_, _ = fmt.Fprintf(out, "%d converted, %d failed (%d without records), %d records total\n",
		summary.Succeeded(), summary.Failed(), summary.Empty(), summary.Records())

	if len(summary.Files) > 0 && summary.Succeeded() == 0 {
		return fmt.Errorf("no file in %s could be converted", inputDir)
	}
	return nil
}
