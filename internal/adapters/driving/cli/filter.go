package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/drawback-cli/internal/claims"
	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
	"github.com/custodia-labs/drawback-cli/internal/logger"
)

var (
	filterHTS      []string
	filterFrom     []string
	filterTo       []string
	filterWithin   []string
	filterWhere    []string
	filterSort     []string
	filterPage     int
	filterPageSize int
	filterJSON     bool
	filterWatch    bool
	filterSource   string
	filterDriver   string
)

// isTerminal reports whether stdout is a terminal. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter claims",
	Long: `Filters claims by HTS code patterns and date ranges.

Filters of different kinds combine with AND; several --hts patterns or
several date ranges combine with OR.

Relative windows for --within:
  twoWeeksBeforeToNow, oneWeekBeforeToNow, last30DaysToNow, last60DaysToNow,
  last90DaysToNow, last1CalendarMonth, last2CalendarMonths, last3CalendarMonths

Output is a table on a terminal and JSON otherwise; --json overrides.`,
	Example: `  drawback filter --hts "1234.%d%d.*.*, 9999.99.99.99" --within last90DaysToNow
  drawback filter --from 2024-01-01 --to 2024-03-31 --sort drawbackClaimed:desc
  drawback filter --where importerName=Acme --driver sqlite --source claims.db`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	f := filterCmd.Flags()
	f.StringArrayVar(&filterHTS, "hts", nil, "comma-separated HTS patterns (repeatable)")
	f.StringArrayVar(&filterFrom, "from", nil, "range start, YYYY-MM-DD or RFC 3339 (repeatable, paired with --to)")
	f.StringArrayVar(&filterTo, "to", nil, "range end, YYYY-MM-DD or RFC 3339 (repeatable, paired with --from)")
	f.StringArrayVar(&filterWithin, "within", nil, "relative date window (repeatable)")
	f.StringArrayVar(&filterWhere, "where", nil, "exact match key=value (repeatable)")
	f.StringArrayVar(&filterSort, "sort", nil, "sort key[:asc|desc] (repeatable, at most 2)")
	f.IntVar(&filterPage, "page", 1, "page number")
	f.IntVar(&filterPageSize, "page-size", 0, "records per page (default from settings)")
	f.BoolVar(&filterJSON, "json", false, "output results as JSON")
	f.BoolVar(&filterWatch, "watch", false, "rerun when the claims file changes")
	f.StringVar(&filterSource, "source", "", "claims file (default from settings)")
	f.StringVar(&filterDriver, "driver", "", "claims driver: json or sqlite (default from settings)")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	if openSource == nil {
		return errors.New("claim source not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	sourceSettings := settings.Source
	if filterSource != "" {
		sourceSettings.Path = filterSource
	}
	if filterDriver != "" {
		sourceSettings.Driver = domain.SourceDriver(filterDriver)
	}

	s, err := session()
	if err != nil {
		return err
	}
	if err := addFilters(s); err != nil {
		return err
	}

	src, err := openSource(sourceSettings)
	if err != nil {
		return fmt.Errorf("open claims: %w", err)
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	pageSize := filterPageSize
	if pageSize <= 0 {
		pageSize = settings.Results.PageSize
	}
	opts := domain.PageOptions{Page: filterPage, PageSize: pageSize}
	for _, raw := range filterSort {
		opts.Sorts = append(opts.Sorts, domain.ParseSortSpec(raw))
	}

	asJSON := filterJSON
	if !cmd.Flags().Changed("json") {
		asJSON = !isTerminal()
	}

	ctx := cmd.Context()
	if err := filterOnce(ctx, cmd, s, src, opts, asJSON); err != nil {
		return err
	}
	if !filterWatch {
		return nil
	}
	return watchFilter(ctx, cmd, s, src, sourceSettings.Path, opts, asJSON)
}

// addFilters turns the command-line filters into filter set entries.
func addFilters(s Session) error {
	for _, codes := range filterHTS {
		_, err := s.Filters.Add(domain.FilterEntity{
			Suggestion: domain.Suggestion{Key: domain.SuggestionKeyHTSIsAny},
			HTSCodes:   codes,
		})
		if err != nil {
			return fmt.Errorf("--hts %q: %w", codes, err)
		}
	}

	if len(filterFrom) != len(filterTo) {
		return fmt.Errorf("%w: --from and --to must be given in pairs", domain.ErrInvalidInput)
	}
	for i := range filterFrom {
		window, err := parseWindow(filterFrom[i], filterTo[i])
		if err != nil {
			return err
		}
		_, err = s.Filters.Add(domain.FilterEntity{
			Suggestion: domain.Suggestion{Key: domain.SuggestionKeyDateIsIn},
			TimeRange:  &window,
		})
		if err != nil {
			return fmt.Errorf("--from %s --to %s: %w", filterFrom[i], filterTo[i], err)
		}
	}

	for _, token := range filterWithin {
		_, err := s.Filters.Add(domain.FilterEntity{
			Suggestion: domain.Suggestion{Key: domain.SuggestionKey(token)},
		})
		if err != nil {
			return fmt.Errorf("--within %q: %w", token, err)
		}
	}
	return nil
}

// whereFields converts --where flags into exact fields, typed after the
// values already stored under each key.
func whereFields(records []domain.Record) ([]domain.SearchField, error) {
	fields := make([]domain.SearchField, 0, len(filterWhere))
	for _, raw := range filterWhere {
		key, value, ok := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: --where %q must be key=value", domain.ErrInvalidInput, raw)
		}
		v, err := claims.ParseValue(value, claims.SampleValue(records, key))
		if err != nil {
			return nil, fmt.Errorf("--where %s: %w", key, err)
		}
		fields = append(fields, domain.NewExactField(key, v))
	}
	return fields, nil
}

func filterOnce(
	ctx context.Context,
	cmd *cobra.Command,
	s Session,
	src driven.ClaimSource,
	opts domain.PageOptions,
	asJSON bool,
) error {
	logger.Section("Filter")
	records, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load claims: %w", err)
	}
	logger.Debug("Loaded %d claim(s) from %s", len(records), src.Location())

	where, err := whereFields(records)
	if err != nil {
		return err
	}
	fields := append(s.Filters.SearchFields(), where...)

	matched := s.Engine.Filter(records, fields)
	page := s.Results.Page(matched, opts)
	totals := claims.Sum(matched)

	if asJSON {
		return outputFilterJSON(cmd, page, totals)
	}
	return outputFilterTable(cmd, page, totals)
}

func watchFilter(
	ctx context.Context,
	cmd *cobra.Command,
	s Session,
	src driven.ClaimSource,
	path string,
	opts domain.PageOptions,
	asJSON bool,
) error {
	events, err := claims.Watch(ctx, path)
	if err != nil {
		return err
	}
	if !asJSON {
		cmd.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", path)
	}
	for range events {
		logger.Info("Claims changed, filtering again")
		if err := filterOnce(ctx, cmd, s, src, opts, asJSON); err != nil {
			// A half-written file must not end the watch.
			logger.Warn("%v", err)
		}
	}
	return nil
}

type filterOutput struct {
	Page         int             `json:"page"`
	PageSize     int             `json:"pageSize"`
	TotalPages   int             `json:"totalPages"`
	TotalRecords int             `json:"totalRecords"`
	Sorts        []string        `json:"sorts,omitempty"`
	Records      []domain.Record `json:"records"`
	Totals       totalsOutput    `json:"totals"`
}

type totalsOutput struct {
	Count           int    `json:"count"`
	DutiesPaid      string `json:"dutiesPaid"`
	DrawbackClaimed string `json:"drawbackClaimed"`
	DrawbackRate    string `json:"drawbackRate"`
}

func outputFilterJSON(cmd *cobra.Command, page domain.Page, totals claims.Totals) error {
	out := filterOutput{
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		TotalRecords: page.TotalRecords,
		Records:      page.Records,
		Totals: totalsOutput{
			Count:           totals.Count,
			DutiesPaid:      totals.DutiesPaid.StringFixed(2),
			DrawbackClaimed: totals.DrawbackClaimed.StringFixed(2),
			DrawbackRate:    totals.DrawbackRate().String(),
		},
	}
	if out.Records == nil {
		out.Records = []domain.Record{}
	}
	for _, s := range page.Sorts {
		out.Sorts = append(out.Sorts, s.String())
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputFilterTable(cmd *cobra.Command, page domain.Page, totals claims.Totals) error {
	if page.TotalRecords == 0 {
		cmd.Println("No claims found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(claims.Columns, "\t"))
	for _, rec := range page.Records {
		cells := make([]string, len(claims.Columns))
		for i, key := range claims.Columns {
			cells[i] = claims.FormatValue(rec[key])
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	cmd.Println()
	cmd.Printf("Page %d of %d (%d claims)\n", page.Page, page.TotalPages, page.TotalRecords)
	cmd.Printf("Duties paid: %s  Drawback claimed: %s  Rate: %s\n",
		totals.DutiesPaid.StringFixed(2), totals.DrawbackClaimed.StringFixed(2), totals.DrawbackRate().String())
	return nil
}

// parseWindow parses a --from/--to pair. Dates without a time are local
// midnight.
func parseWindow(from, to string) (domain.AbsoluteRange, error) {
	start, err := parseTime(from)
	if err != nil {
		return domain.AbsoluteRange{}, fmt.Errorf("--from: %w", err)
	}
	end, err := parseTime(to)
	if err != nil {
		return domain.AbsoluteRange{}, fmt.Errorf("--to: %w", err)
	}
	return domain.AbsoluteRange{Start: start, End: end}, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(time.DateOnly, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD or RFC 3339", domain.ErrInvalidDateInput, s)
}
