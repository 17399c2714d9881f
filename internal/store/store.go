// Package store loads user-maintained data files, currently the noise marker list.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/receivables-xlsx/internal/fileutils"
	"fjacquet/receivables-xlsx/internal/logging"

	"gopkg.in/yaml.v3"
)

// DefaultMarkersFile is looked up when no marker file is configured.
const DefaultMarkersFile = "noise_markers.yaml"

// MarkerSource supplies extra noise markers.
type MarkerSource interface {
	LoadMarkers() ([]string, error)
}

// MarkerStore reads noise markers from a YAML file. Two layouts are accepted:
//
//	- TOTAL GERAL
//	- EMITIDO EM
//
// or
//
//	markers:
//	  - TOTAL GERAL
type MarkerStore struct {
	MarkersFile string
	logger      logging.Logger
}

// NewMarkerStore creates a store. An empty file name searches for DefaultMarkersFile
// and treats its absence as an empty list.
func NewMarkerStore(markersFile string, logger logging.Logger) *MarkerStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &MarkerStore{MarkersFile: markersFile, logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations. Directories
// with a matching name are skipped.
func (s *MarkerStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".receivables-xlsx", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".receivables-xlsx", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadMarkers returns the markers in file order, trimmed, without blanks.
func (s *MarkerStore) LoadMarkers() ([]string, error) {
	filename := s.MarkersFile
	explicit := filename != ""
	if !explicit {
		filename = DefaultMarkersFile
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("No noise marker file found",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return nil, nil
		}
		return nil, fmt.Errorf("noise marker file not found: %s: %w", filename, err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("error reading noise marker file: %w", err)
	}

	markers, err := parseMarkers(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing noise marker file %s: %w", path, err)
	}

	s.logger.Debug("Loaded noise markers",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(markers)})
	return markers, nil
}

func parseMarkers(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var raw []string
	switch root := node.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&raw); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var doc struct {
			Markers []string `yaml:"markers"`
		}
		if err := root.Decode(&doc); err != nil {
			return nil, err
		}
		raw = doc.Markers
	default:
		return nil, fmt.Errorf("expected a list of markers")
	}

	markers := make([]string, 0, len(raw))
	for _, m := range raw {
		if m = strings.TrimSpace(m); m != "" {
			markers = append(markers, m)
		}
	}
	return markers, nil
}
