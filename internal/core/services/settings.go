package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeySourceDriver    = "source.driver"
	KeySourcePath      = "source.path"
	KeySourceTable     = "source.table"
	KeyFieldsDate      = "fields.date"
	KeyFieldsHTS       = "fields.hts"
	KeyResultsPageSize = "results.page_size"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Source: domain.SourceSettings{
			Driver: s.getSourceDriver(defaults.Source.Driver),
			Path:   s.getString(KeySourcePath, defaults.Source.Path),
			Table:  s.getString(KeySourceTable, defaults.Source.Table),
		},
		Fields: domain.FieldSettings{
			DateKey: s.getString(KeyFieldsDate, defaults.Fields.DateKey),
			HTSKey:  s.getString(KeyFieldsHTS, defaults.Fields.HTSKey),
		},
		Results: domain.ResultSettings{
			PageSize: s.getPositiveInt(KeyResultsPageSize, defaults.Results.PageSize),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save source settings
	if err := s.configStore.Set(KeySourceDriver, settings.Source.Driver.String()); err != nil {
		return fmt.Errorf("save source driver: %w", err)
	}
	if err := s.configStore.Set(KeySourcePath, settings.Source.Path); err != nil {
		return fmt.Errorf("save source path: %w", err)
	}
	if err := s.configStore.Set(KeySourceTable, settings.Source.Table); err != nil {
		return fmt.Errorf("save source table: %w", err)
	}

	// Save field keys
	if err := s.configStore.Set(KeyFieldsDate, settings.Fields.DateKey); err != nil {
		return fmt.Errorf("save date field: %w", err)
	}
	if err := s.configStore.Set(KeyFieldsHTS, settings.Fields.HTSKey); err != nil {
		return fmt.Errorf("save hts field: %w", err)
	}

	// Save result settings
	if err := s.configStore.Set(KeyResultsPageSize, settings.Results.PageSize); err != nil {
		return fmt.Errorf("save page size: %w", err)
	}

	return nil
}

// Set updates one setting from its text form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeySourceDriver:
		driver := domain.SourceDriver(value)
		if !driver.IsValid() {
			return fmt.Errorf("%w: invalid source driver: %s", domain.ErrUnsupportedType, value)
		}
		settings.Source.Driver = driver
	case KeySourcePath:
		settings.Source.Path = value
	case KeySourceTable:
		settings.Source.Table = value
	case KeyFieldsDate:
		settings.Fields.DateKey = value
	case KeyFieldsHTS:
		settings.Fields.HTSKey = value
	case KeyResultsPageSize:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: page size must be a positive integer: %s", domain.ErrInvalidInput, value)
		}
		settings.Results.PageSize = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrNotFound, key)
	}

	if err := validateSettings(settings); err != nil {
		return err
	}
	return s.Save(settings)
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeySourceDriver,
		KeySourcePath,
		KeySourceTable,
		KeyFieldsDate,
		KeyFieldsHTS,
		KeyResultsPageSize,
	}
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return validateSettings(settings)
}

func validateSettings(settings *domain.AppSettings) error {
	if !settings.Source.Driver.IsValid() {
		return fmt.Errorf("%w: invalid source driver: %s", domain.ErrUnsupportedType, settings.Source.Driver)
	}
	if settings.Source.Path == "" {
		return fmt.Errorf("%w: source path is not set", domain.ErrInvalidInput)
	}
	if settings.Source.Driver == domain.SourceDriverSQLite && settings.Source.Table == "" {
		return fmt.Errorf("%w: source driver %q requires a table", domain.ErrInvalidInput, settings.Source.Driver)
	}
	if settings.Fields.DateKey == "" || settings.Fields.HTSKey == "" {
		return fmt.Errorf("%w: field keys must not be empty", domain.ErrInvalidInput)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSourceDriver(defaultVal domain.SourceDriver) domain.SourceDriver {
	val := s.configStore.GetString(KeySourceDriver)
	if val == "" {
		return defaultVal
	}
	driver := domain.SourceDriver(val)
	if !driver.IsValid() {
		return defaultVal
	}
	return driver
}
