package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure where claims are read from, which record keys the
filters apply to, and the default page size.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a single setting",
	Long: `Set a single setting by its dotted key.

Keys:
  source.driver      json or sqlite
  source.path        claims file
  source.table       SQLite table (sqlite driver only)
  fields.date        record key holding YYYY-MM-DD dates
  fields.hts         record key holding HTS codes
  results.page_size  default records per page`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Source]")
	cmd.Printf("  Driver: %s\n", settings.Source.Driver.Description())
	cmd.Printf("  Path: %s\n", settings.Source.Path)
	if settings.Source.Driver == domain.SourceDriverSQLite {
		cmd.Printf("  Table: %s\n", settings.Source.Table)
	}
	cmd.Println()

	cmd.Println("[Fields]")
	cmd.Printf("  Date: %s\n", settings.Fields.DateKey)
	cmd.Printf("  HTS: %s\n", settings.Fields.HTSKey)
	cmd.Println()

	cmd.Println("[Results]")
	cmd.Printf("  Page size: %d\n", settings.Results.PageSize)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'drawback settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("unknown setting %q, expected one of %s: %w",
				key, strings.Join(settingsService.Keys(), ", "), err)
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Drawback Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Source
	cmd.Println("Step 1: Select Claim Source")
	cmd.Println("---------------------------")
	drivers := domain.AllSourceDrivers()
	current := 1
	for i, d := range drivers {
		cmd.Printf("  %d. %s\n", i+1, d.Description())
		if d == settings.Source.Driver {
			current = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.Source.Driver = drivers[parseChoice(readLine(reader), len(drivers), current)-1]

	settings.Source.Path = prompt(cmd, reader, "Claims file", settings.Source.Path)
	if settings.Source.Driver == domain.SourceDriverSQLite {
		settings.Source.Table = prompt(cmd, reader, "Table", settings.Source.Table)
	}
	cmd.Println()

	// Step 2: Fields
	cmd.Println("Step 2: Record Keys")
	cmd.Println("-------------------")
	settings.Fields.DateKey = prompt(cmd, reader, "Date key", settings.Fields.DateKey)
	settings.Fields.HTSKey = prompt(cmd, reader, "HTS key", settings.Fields.HTSKey)
	cmd.Println()

	// Step 3: Results
	cmd.Println("Step 3: Results")
	cmd.Println("---------------")
	size := prompt(cmd, reader, "Page size", strconv.Itoa(settings.Results.PageSize))
	if n, err := strconv.Atoi(size); err == nil && n > 0 {
		settings.Results.PageSize = n
	} else {
		cmd.Printf("Keeping page size %d\n", settings.Results.PageSize)
	}
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

// Helper functions.

func prompt(cmd *cobra.Command, reader *bufio.Reader, label, current string) string {
	cmd.Printf("%s [%s]: ", label, current)
	if input := readLine(reader); input != "" {
		return input
	}
	return current
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
