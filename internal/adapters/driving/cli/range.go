package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Resolve and check date ranges",
}

var rangeResolveCmd = &cobra.Command{
	Use:   "resolve TOKEN",
	Short: "Show the window a relative range covers now",
	Args:  cobra.ExactArgs(1),
	RunE:  runRangeResolve,
}

var rangeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the relative ranges",
	Args:  cobra.NoArgs,
	RunE:  runRangeList,
}

var rangeCheckCmd = &cobra.Command{
	Use:   "check START END [START END]...",
	Short: "Check a sequence of absolute ranges for ordering and overlap",
	Long: `Adds each START END pair in turn, as a "Date is in" filter would.
A pair is rejected when its end is not after its start or when it
overlaps an accepted pair. Ranges that only touch do not overlap.`,
	Example: `  drawback range check 2024-01-01 2024-01-31 2024-01-31 2024-02-29`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("%w: expected START END pairs, got %d argument(s)", domain.ErrInvalidInput, len(args))
		}
		return nil
	},
	RunE: runRangeCheck,
}

func init() {
	rangeCmd.AddCommand(rangeResolveCmd)
	rangeCmd.AddCommand(rangeListCmd)
	rangeCmd.AddCommand(rangeCheckCmd)
	rootCmd.AddCommand(rangeCmd)
}

func runRangeResolve(cmd *cobra.Command, args []string) error {
	r := domain.RelativeRange(args[0])
	if !r.IsValid() {
		return fmt.Errorf("%w: unknown relative range %q", domain.ErrUnsupportedType, args[0])
	}

	s, err := session()
	if err != nil {
		return err
	}
	cmd.Printf("%s: %s\n", r.Description(), formatRange(s.Ranges.ResolveRelative(r)))
	return nil
}

func runRangeList(cmd *cobra.Command, _ []string) error {
	s, err := session()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tLABEL\tWINDOW")
	for _, r := range domain.RelativeRanges() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r, r.Description(), formatRange(s.Ranges.ResolveRelative(r)))
	}
	return w.Flush()
}

func runRangeCheck(cmd *cobra.Command, args []string) error {
	s, err := session()
	if err != nil {
		return err
	}

	rejected := 0
	for i := 0; i < len(args); i += 2 {
		window, err := parseWindow(args[i], args[i+1])
		if err == nil {
			_, err = s.Ranges.AddAbsolute(window.Start, window.End)
		}
		if err != nil {
			rejected++
			cmd.Printf("%s %s: rejected: %v\n", args[i], args[i+1], err)
			continue
		}
		cmd.Printf("%s %s: ok\n", args[i], args[i+1])
	}

	if rejected > 0 {
		return fmt.Errorf("%d of %d range(s) rejected", rejected, len(args)/2)
	}
	return nil
}

// formatRange renders a window in UTC as "YYYY-MM-DD HH:MM - YYYY-MM-DD HH:MM".
func formatRange(r domain.AbsoluteRange) string {
	const layout = "2006-01-02 15:04"
	return r.Start.UTC().Format(layout) + " - " + r.End.UTC().Format(layout)
}
