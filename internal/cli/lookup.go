package cli

import (
	"context"
	"fmt"

	"github.com/hightemp/countrykit/internal/batch"
	"github.com/hightemp/countrykit/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) runLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) == 1 {
		// Single code lookup
		return a.lookupSingle(args[0])
	}

	if isTerminal(a.stdin) {
		// stdin is a terminal, show help
		return cmd.Help()
	}

	// Batch mode from stdin
	processor := batch.NewProcessor(a.catalog)
	return processor.ProcessInput(ctx, a.stdin, a.stdout, a.cfg.Format)
}

func (a *app) lookupSingle(code string) error {
	country, ok := a.catalog.CountryByCode(code)
	if !ok {
		return exitWithCode(ExitNotFound, "Country code %s not found", code)
	}

	str, err := output.NewCountryResult(code, country).Format(a.cfg.Format)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, str)
	return nil
}
