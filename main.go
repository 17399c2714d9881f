package main

import (
	"fmt"
	"os"

	"fjacquet/receivables-xlsx/cmd/batch"
	"fjacquet/receivables-xlsx/cmd/convert"
	"fjacquet/receivables-xlsx/cmd/inspect"
	"fjacquet/receivables-xlsx/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(inspect.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
