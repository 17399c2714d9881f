// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/receivables-xlsx/internal/config"
	"fjacquet/receivables-xlsx/internal/container"
	"fjacquet/receivables-xlsx/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "receivables-xlsx",
		Short: "A CLI tool to convert receivables aging reports to spreadsheets.",
		Long: `receivables-xlsx reads pending receivables reports (PDF or text), recognizes the
customer header lines and the document lines under them, and writes one spreadsheet
row per document with its customer, dates, aging and amounts.`,
		SilenceUsage:       true,
		PersistentPreRunE:  initialize,
		PersistentPostRunE: finalize,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// ConfigFile overrides the config.yaml search
	ConfigFile string
	// LogLevel and LogFormat override the configured logging when set
	LogLevel  string
	LogFormat string

	// AppContainer is built before any subcommand runs
	AppContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default searches $HOME/.receivables-xlsx, .receivables-xlsx and .)")
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&LogFormat, "log-format", "", "Log format (text, json)")
}

func initialize(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.LoadConfig(ConfigFile)
	if err != nil {
		return err
	}
	if LogLevel != "" {
		cfg.Log.Level = LogLevel
	}
	if LogFormat != "" {
		cfg.Log.Format = LogFormat
	}

	logger := config.ConfigureLoggingFromConfig(cfg)
	logging.SetDefault(logger)

	AppContainer, err = container.NewContainer(cfg, container.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return nil
}

func finalize(cmd *cobra.Command, args []string) error {
	if AppContainer == nil {
		return nil
	}
	return AppContainer.Close()
}

// GetContainer returns the application container, or nil before initialization.
func GetContainer() *container.Container {
	return AppContainer
}

// GetLogger returns the container's logger, or the default logger before initialization.
func GetLogger() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return logging.GetLogger()
}
