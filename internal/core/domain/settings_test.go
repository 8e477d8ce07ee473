package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceDriver_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		driver   SourceDriver
		expected bool
	}{
		{name: "json is valid", driver: SourceDriverJSON, expected: true},
		{name: "sqlite is valid", driver: SourceDriverSQLite, expected: true},
		{name: "empty string is invalid", driver: SourceDriver(""), expected: false},
		{name: "unknown driver is invalid", driver: SourceDriver("csv"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.driver.IsValid())
		})
	}
}

func TestSourceDriver_Description(t *testing.T) {
	assert.Equal(t, "JSON file (array of claims)", SourceDriverJSON.Description())
	assert.Equal(t, "SQLite database (claims table)", SourceDriverSQLite.Description())
	assert.Equal(t, "Unknown", SourceDriver("csv").Description())
	assert.Equal(t, "sqlite", SourceDriverSQLite.String())
}

func TestAllSourceDrivers(t *testing.T) {
	drivers := AllSourceDrivers()

	assert.Equal(t, []SourceDriver{SourceDriverJSON, SourceDriverSQLite}, drivers)
	for _, d := range drivers {
		assert.True(t, d.IsValid())
	}
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, SourceDriverJSON, settings.Source.Driver)
	assert.Equal(t, "claims.json", settings.Source.Path)
	assert.Equal(t, "claims", settings.Source.Table)
	assert.Equal(t, "importDate", settings.Fields.DateKey)
	assert.Equal(t, "HTSCode", settings.Fields.HTSKey)
	assert.Equal(t, DefaultPageSize, settings.Results.PageSize)
}
