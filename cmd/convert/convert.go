// Package convert handles single report conversion
package convert

import (
	"errors"
	"fmt"

	"fjacquet/receivables-xlsx/cmd/common"
	"fjacquet/receivables-xlsx/cmd/root"
	"fjacquet/receivables-xlsx/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a receivables report to XLSX or CSV",
	Long: `Convert a pending receivables report (PDF or text) to a spreadsheet.

The output format follows the output file extension (.xlsx or .csv), falling back to
export.format. Without -o the result is written next to the input as
converted_<name>.xlsx.

Example:
  receivables-xlsx convert -i aging.pdf
  receivables-xlsx convert -i aging.pdf -o aging.csv`,
	RunE: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return errors.New("container not initialized")
	}
	logger := appContainer.GetLogger()

	input := root.SharedFlags.Input
	if input == "" {
		return errors.New("input file must be specified with --input")
	}

	if err := validation.IsValidInputFile(input); err != nil {
		return err
	}
	if err := validation.IsValidOutputPath(root.SharedFlags.Output); err != nil {
		return err
	}

	p, err := appContainer.ParserForFile(input)
	if err != nil {
		return err
	}

	output := common.ResolveOutput(input, root.SharedFlags.Output, appContainer.GetConfig().Export.Format)
	count, err := common.ProcessFile(p, input, output, root.SharedFlags.Validate, logger)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", count, output)
	return nil
}
