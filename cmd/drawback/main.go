package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/drawback-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/drawback-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/drawback-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/drawback-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/drawback-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
	"github.com/custodia-labs/drawback-cli/internal/core/services"
)

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli.Configure(cli.Dependencies{
		Settings:   services.NewSettingsService(configStore),
		NewSession: newSession,
		OpenSource: openSource,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newSession wires a fresh set of services over in-memory state.
func newSession(fields domain.FieldSettings) cli.Session {
	validator := services.NewHTSValidator(memory.NewCodeRegistry())
	ranges := services.NewTimeRangeService(memory.NewRangeStore())

	filters := services.NewFilterSetService(validator, ranges)
	if fields.DateKey != "" {
		filters.DateKey = fields.DateKey
	}
	if fields.HTSKey != "" {
		filters.HTSKey = fields.HTSKey
	}

	return cli.Session{
		Filters:   filters,
		Validator: validator,
		Ranges:    ranges,
		Engine:    services.NewFilterEngine(ranges),
		Results:   services.NewResultsService(),
	}
}

func openSource(source domain.SourceSettings) (driven.ClaimSource, error) {
	switch source.Driver {
	case domain.SourceDriverJSON, "":
		return jsonfile.NewClaimSource(source.Path), nil
	case domain.SourceDriverSQLite:
		src, err := sqlite.NewClaimSource(source.Path, source.Table)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("%w: source driver %q", domain.ErrUnsupportedType, source.Driver)
	}
}
