package root_test

import (
	"testing"

	"fjacquet/receivables-xlsx/cmd/root"

	"github.com/stretchr/testify/assert"
)

func init() {
	root.Init()
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "receivables-xlsx", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "receivables aging reports")
	assert.Contains(t, root.Cmd.Long, "one spreadsheet\nrow per document")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRunE)
	assert.True(t, root.Cmd.SilenceUsage)
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"input", "i"},
		{"output", "o"},
		{"validate", "v"},
		{"config", ""},
		{"log-level", ""},
		{"log-format", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := root.Cmd.PersistentFlags().Lookup(tt.name)
			if assert.NotNil(t, flag) {
				assert.Equal(t, tt.shorthand, flag.Shorthand)
			}
		})
	}
}

func TestGetLoggerBeforeInitialization(t *testing.T) {
	original := root.AppContainer
	defer func() { root.AppContainer = original }()

	root.AppContainer = nil
	assert.Nil(t, root.GetContainer())
	assert.NotNil(t, root.GetLogger())
}
