// Package inspect prints how each line of a report is classified
package inspect

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"fjacquet/receivables-xlsx/cmd/root"
	"fjacquet/receivables-xlsx/internal/reportparser"
	"fjacquet/receivables-xlsx/internal/validation"

	"github.com/spf13/cobra"
)

var (
	onlyUnmatched bool
	showAll       bool
)

// Cmd represents the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how each report line is classified",
	Long: `Show the classification of every non-blank line of a report: noise, party header,
bank, card or generic detail, unclassified, or too short.

Use it when a conversion fails with "input format not recognized" to see which lines
the current patterns and noise markers miss. Detail lines seen before any party header
are marked as orphaned.

Example:
  receivables-xlsx inspect -i aging.pdf --unmatched`,
	RunE: inspectFunc,
}

func init() {
	Cmd.Flags().BoolVar(&onlyUnmatched, "unmatched", false, "Only print unclassified and orphaned lines")
	Cmd.Flags().BoolVar(&showAll, "all", false, "Also print noise and short lines")
}

func inspectFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return errors.New("container not initialized")
	}

	input := root.SharedFlags.Input
	if input == "" {
		return errors.New("input file must be specified with --input")
	}

	if err := validation.IsValidInputFile(input); err != nil {
		return err
	}

	p, err := appContainer.ParserForFile(input)
	if err != nil {
		return err
	}
	reports, err := p.InspectFile(input)
	if err != nil {
		return err
	}

	counts := make(map[reportparser.LineClass]int)
	orphaned := 0

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PAGE\tLINE\tCLASS\tTEXT")
	for _, r := range reports {
		counts[r.Class]++
		if r.Orphaned {
			orphaned++
		}
		if !shouldPrint(r) {
			continue
		}
		class := string(r.Class)
		if r.Orphaned {
			class += " (orphaned)"
		}
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", r.Page, r.Line, class, r.Text)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "\n%d lines:", len(reports))
	classes := append(appContainer.GetExtractor().Registry().Classes(),
		reportparser.ClassShort, reportparser.ClassUnclassified)
	for _, class := range classes {
		_, _ = fmt.Fprintf(out, " %s=%d", class, counts[class])
	}
	_, _ = fmt.Fprintf(out, " orphaned=%d\n", orphaned)
	return nil
}

func shouldPrint(r reportparser.LineReport) bool {
	if onlyUnmatched {
		return r.Class == reportparser.ClassUnclassified || r.Orphaned
	}
	if showAll {
		return true
	}
	return r.Class != reportparser.ClassNoise && r.Class != reportparser.ClassShort
}
