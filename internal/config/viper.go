// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g. RECV_LOG_LEVEL.
const EnvPrefix = "RECV"

// Extractor names accepted by pdf.extractor.
const (
	ExtractorNative    = "native"
	ExtractorPdftotext = "pdftotext"
)

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ExportConfig controls the spreadsheet writers.
type ExportConfig struct {
	Format       string `mapstructure:"format" yaml:"format"`
	SheetName    string `mapstructure:"sheet_name" yaml:"sheet_name"`
	CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
}

// ExtractionConfig controls line classification.
type ExtractionConfig struct {
	MinLineLength   int      `mapstructure:"min_line_length" yaml:"min_line_length"`
	GenericFallback bool     `mapstructure:"generic_fallback" yaml:"generic_fallback"`
	NoiseMarkers    []string `mapstructure:"noise_markers" yaml:"noise_markers"`
	NoiseFile       string   `mapstructure:"noise_file" yaml:"noise_file"`
}

// PDFConfig selects how PDF text is obtained.
type PDFConfig struct {
	Extractor     string `mapstructure:"extractor" yaml:"extractor"`
	PdftotextPath string `mapstructure:"pdftotext_path" yaml:"pdftotext_path"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Export     ExportConfig     `mapstructure:"export" yaml:"export"`
	Extraction ExtractionConfig `mapstructure:"extraction" yaml:"extraction"`
	PDF        PDFConfig        `mapstructure:"pdf" yaml:"pdf"`
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Export.CSVDelimiter)
	return r
}

// LoadConfig loads configuration from defaults, a config file and RECV_* environment
// variables. An empty configFile searches $HOME/.receivables-xlsx, .receivables-xlsx and
// the working directory for config.yaml.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.receivables-xlsx")
		v.AddConfigPath(".receivables-xlsx")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("export.format", "xlsx")
	v.SetDefault("export.sheet_name", "Pendências")
	v.SetDefault("export.csv_delimiter", ",")

	v.SetDefault("extraction.min_line_length", 5)
	v.SetDefault("extraction.generic_fallback", true)
	v.SetDefault("extraction.noise_markers", []string{})
	v.SetDefault("extraction.noise_file", "")

	v.SetDefault("pdf.extractor", ExtractorNative)
	v.SetDefault("pdf.pdftotext_path", "pdftotext")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Export.Format != "xlsx" && config.Export.Format != "csv" {
		return fmt.Errorf("invalid export format: %s (must be 'xlsx' or 'csv')", config.Export.Format)
	}

	if err := validateSheetName(config.Export.SheetName); err != nil {
		return err
	}

	if utf8.RuneCountInString(config.Export.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Export.CSVDelimiter)
	}

	if config.Extraction.MinLineLength < 0 {
		return fmt.Errorf("extraction.min_line_length must not be negative, got: %d", config.Extraction.MinLineLength)
	}

	if config.PDF.Extractor != ExtractorNative && config.PDF.Extractor != ExtractorPdftotext {
		return fmt.Errorf("invalid pdf extractor: %s (must be '%s' or '%s')",
			config.PDF.Extractor, ExtractorNative, ExtractorPdftotext)
	}

	if config.PDF.Extractor == ExtractorPdftotext && config.PDF.PdftotextPath == "" {
		return fmt.Errorf("pdf.pdftotext_path required when pdf.extractor is %s", ExtractorPdftotext)
	}

	return nil
}

// Worksheet names are limited to 31 characters and cannot contain []:*?/\
func validateSheetName(name string) error {
	if name == "" {
		return fmt.Errorf("export.sheet_name must not be empty")
	}
	if utf8.RuneCountInString(name) > 31 {
		return fmt.Errorf("export.sheet_name must be at most 31 characters, got: %s", name)
	}
	if strings.ContainsAny(name, `[]:*?/\`) {
		return fmt.Errorf("export.sheet_name contains an invalid character: %s", name)
	}
	return nil
}
