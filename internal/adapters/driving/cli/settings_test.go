package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

func TestSettingsShowCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Source]")
	assert.Contains(t, out, "Driver: JSON file (array of claims)")
	assert.Contains(t, out, "Path: claims.json")
	assert.NotContains(t, out, "Table:")
	assert.Contains(t, out, "Date: importDate")
	assert.Contains(t, out, "HTS: HTSCode")
	assert.Contains(t, out, "Page size: 10")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsCmd_DefaultsToShow(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsSetCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "set", "source.driver", "sqlite")
	require.NoError(t, err)
	assert.Equal(t, "Set source.driver = sqlite\n", out)

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Driver: SQLite database (claims table)")
	assert.Contains(t, out, "Table: claims")
}

func TestSettingsSetCmd_Errors(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "unknown key", key: "search.mode", value: "x", wantErr: domain.ErrNotFound},
		{name: "bad driver", key: "source.driver", value: "csv", wantErr: domain.ErrUnsupportedType},
		{name: "bad page size", key: "results.page_size", value: "0", wantErr: domain.ErrInvalidInput},
		{name: "empty field key", key: "fields.hts", value: "", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "settings", "set", tt.key, tt.value)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettingsSetCmd_UnknownKeyListsKeys(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "nope", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.driver, source.path")
}

func TestSettingsWizardCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetIn(strings.NewReader("2\ndata/claims.db\nentries\n\nhts_code\n25\n"))
	out, err := execute(t, "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "All settings are valid and saved.")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.SourceDriverSQLite, settings.Source.Driver)
	assert.Equal(t, "data/claims.db", settings.Source.Path)
	assert.Equal(t, "entries", settings.Source.Table)
	assert.Equal(t, "importDate", settings.Fields.DateKey)
	assert.Equal(t, "hts_code", settings.Fields.HTSKey)
	assert.Equal(t, 25, settings.Results.PageSize)
}

func TestSettingsWizardCmd_KeepsDefaultsOnEmptyInput(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetIn(strings.NewReader(""))
	out, err := execute(t, "settings", "wizard")

	require.NoError(t, err)
	assert.NotContains(t, out, "Table [")
	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	oldService := settingsService
	settingsService = nil
	defer func() { settingsService = oldService }()

	for _, args := range [][]string{{"settings", "show"}, {"settings", "set", "a", "b"}, {"settings", "wizard"}} {
		_, err := execute(t, args...)
		assert.EqualError(t, err, "settings service not configured")
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{name: "Empty input returns default", input: "", maxVal: 2, defaultVal: 1, expected: 1},
		{name: "Valid choice within range", input: "2", maxVal: 2, defaultVal: 1, expected: 2},
		{name: "Choice below minimum returns default", input: "0", maxVal: 2, defaultVal: 1, expected: 1},
		{name: "Choice above maximum returns default", input: "3", maxVal: 2, defaultVal: 1, expected: 1},
		{name: "Invalid input returns default", input: "sqlite", maxVal: 2, defaultVal: 2, expected: 2},
		{name: "Negative number returns default", input: "-1", maxVal: 2, defaultVal: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}
