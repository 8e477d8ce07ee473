package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driving"
	"github.com/custodia-labs/drawback-cli/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var verbose bool

// Session bundles the services of one command run. Code registries and
// accepted ranges live only as long as the session.
type Session struct {
	Filters   driving.FilterSetService
	Validator driving.HTSValidator
	Ranges    driving.TimeRangeService
	Engine    driving.FilterEngine
	Results   driving.ResultsService
}

// Dependencies are the services and factories the commands run on.
type Dependencies struct {
	Settings   driving.SettingsService
	NewSession func(fields domain.FieldSettings) Session
	OpenSource func(source domain.SourceSettings) (driven.ClaimSource, error)
}

var (
	settingsService driving.SettingsService
	newSession      func(fields domain.FieldSettings) Session
	openSource      func(source domain.SourceSettings) (driven.ClaimSource, error)
)

var rootCmd = &cobra.Command{
	Use:   "drawback",
	Short: "Filter duty drawback claims by HTS code and date",
	Long: `drawback filters duty drawback claims by HTS code patterns, absolute
date ranges and relative date windows.

HTS patterns have four dot-separated sections of 4, 2, 2 and 2 digit
positions. A position is a digit, %d (any digit) or {x-y} (a digit range);
a lone * matches a whole section.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
}

// Configure installs the services used by the commands.
func Configure(deps Dependencies) {
	settingsService = deps.Settings
	newSession = deps.NewSession
	openSource = deps.OpenSource
}

// Execute runs the root command. Cancelling ctx stops --watch.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func session() (Session, error) {
	if newSession == nil {
		return Session{}, errors.New("services not configured")
	}
	settings, err := currentSettings()
	if err != nil {
		return Session{}, err
	}
	return newSession(settings.Fields), nil
}

// currentSettings returns the saved settings, or defaults when no
// settings service is configured.
func currentSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	return settingsService.Get()
}
