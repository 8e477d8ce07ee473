package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/drawback-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/drawback-cli/internal/claims"
	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
	"github.com/custodia-labs/drawback-cli/internal/core/services"
)

// fakeSource serves fixed records.
type fakeSource struct {
	records []domain.Record
	err     error
	opened  domain.SourceSettings
}

func (s *fakeSource) Load(_ context.Context) ([]domain.Record, error) {
	return s.records, s.err
}

func (s *fakeSource) Location() string {
	return "fake:" + s.opened.Path
}

func testRecords() []domain.Record {
	qty := int64(40)
	return claims.Records([]claims.Claim{
		{ClaimID: 1, ImporterName: "Acme", HTSCode: "1234.12.34.56", ImportDate: "2024-01-15",
			ImportQuantity: 100, DutiesPaid: decimal.RequireFromString("1000"), DrawbackClaimed: decimal.RequireFromString("990")},
		{ClaimID: 2, ImporterName: "Globex", HTSCode: "1234.19.34.56", ImportDate: "2024-02-20",
			ImportQuantity: 50, ExportDate: "2024-03-01", ExportQuantity: &qty,
			DutiesPaid: decimal.RequireFromString("500"), DrawbackClaimed: decimal.RequireFromString("495")},
		{ClaimID: 3, ImporterName: "Acme", HTSCode: "9999.99.99.99", ImportDate: "2024-03-05",
			ImportQuantity: 10, DutiesPaid: decimal.RequireFromString("20.50"), DrawbackClaimed: decimal.RequireFromString("20")},
	})
}

func testSession(fields domain.FieldSettings) Session {
	validator := services.NewHTSValidator(memory.NewCodeRegistry())
	ranges := services.NewTimeRangeService(memory.NewRangeStore())
	filters := services.NewFilterSetService(validator, ranges)
	filters.DateKey = fields.DateKey
	filters.HTSKey = fields.HTSKey
	return Session{
		Filters:   filters,
		Validator: validator,
		Ranges:    ranges,
		Engine:    services.NewFilterEngine(ranges),
		Results:   services.NewResultsService(),
	}
}

// setupTestServices installs in-memory services and returns the fake
// source and a cleanup function.
func setupTestServices() (*fakeSource, func()) {
	oldSettings, oldSession, oldOpen, oldTerminal := settingsService, newSession, openSource, isTerminal

	src := &fakeSource{records: testRecords()}
	Configure(Dependencies{
		Settings:   services.NewSettingsService(memory.NewConfigStore()),
		NewSession: testSession,
		OpenSource: func(source domain.SourceSettings) (driven.ClaimSource, error) {
			src.opened = source
			if source.Driver == "broken" {
				return nil, errors.New("cannot open")
			}
			return src, nil
		},
	})
	isTerminal = func() bool { return true }

	return src, func() {
		settingsService, newSession, openSource, isTerminal = oldSettings, oldSession, oldOpen, oldTerminal
	}
}

// resetFlags restores every flag to its default. Cobra keeps flag values
// between Execute calls on the same command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "drawback", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "v", flag.Shorthand)
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"filter", "hts", "range", "settings", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestSession_NotConfigured(t *testing.T) {
	oldSession := newSession
	newSession = nil
	defer func() { newSession = oldSession }()

	_, err := execute(t, "hts", "format", "1234123456")

	assert.EqualError(t, err, "services not configured")
}

func TestCurrentSettings_DefaultsWithoutService(t *testing.T) {
	oldSettings := settingsService
	settingsService = nil
	defer func() { settingsService = oldSettings }()

	settings, err := currentSettings()

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}
