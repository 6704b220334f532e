package cli

import (
	"fmt"
	"strings"

	"github.com/hightemp/countrykit"
	"github.com/hightemp/countrykit/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) newSearchCmd() *cobra.Command {
	var (
		limit    int
		exact    bool
		nameOnly bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search countries by name or code",
		Long: `Searches country names, and alpha-2/alpha-3 codes unless --name-only is
given, for a case-insensitive substring (or exact, with --exact) match.

Examples:
  countrykit search united
  countrykit search "united states of america" --exact
  countrykit search us --name-only --limit 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := countrykit.SearchOptions{
				Limit:        a.cfg.SearchLimit,
				Exact:        a.cfg.ExactSearch,
				IncludeCodes: !a.cfg.NameOnly,
			}
			if cmd.Flags().Changed("limit") {
				opts.Limit = limit
			}
			if cmd.Flags().Changed("exact") {
				opts.Exact = exact
			}
			if cmd.Flags().Changed("name-only") {
				opts.IncludeCodes = !nameOnly
			}

			query := strings.Join(args, " ")
			result := a.catalog.SearchCountries(query, countrykit.WithOptions(opts))
			if len(result) == 0 {
				return exitWithCode(ExitNotFound, "No countries match %q", query)
			}
			return a.writeCountries(result)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 for no limit)")
	cmd.Flags().BoolVar(&exact, "exact", false, "require an exact match")
	cmd.Flags().BoolVar(&nameOnly, "name-only", false, "match names only, not codes")
	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all countries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.writeCountries(a.catalog.AllCountries())
		},
	}
}

func (a *app) newCallingCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calling-code <+code>",
		Short: "List countries sharing an international calling code",
		Example: `  countrykit calling-code +1
  countrykit calling-code +44`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !countrykit.IsValidCallingCode(args[0]) {
				return exitWithCode(ExitInvalidInput, "Invalid calling code: %s (expected + followed by 1-4 digits)", args[0])
			}
			result := a.catalog.CountriesByCallingCode(args[0])
			if len(result) == 0 {
				return exitWithCode(ExitNotFound, "No countries use calling code %s", args[0])
			}
			return a.writeCountries(result)
		},
	}
}

func (a *app) newFlagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flag <code>",
		Short: "Print the flag glyph for a two-letter code",
		Long: `Prints the regional indicator flag for a two-letter code. The code does
not need to be in the country table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if len(code) != 2 || !isASCIILetters(code) {
				return exitWithCode(ExitInvalidInput, "Invalid code: %s (expected two letters)", code)
			}
			fmt.Fprintln(a.stdout, countrykit.Flag(code))
			return nil
		},
	}
}

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <value>...",
		Short: "Check country codes and calling codes",
		Long: `Checks each value. Values starting with '+' are checked as calling codes,
everything else as alpha-2 country codes. Exits with status 2 if any value is
invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, v := range args {
				var ok bool
				kind := "country code"
				if strings.HasPrefix(v, "+") {
					kind = "calling code"
					ok = countrykit.IsValidCallingCode(v)
				} else {
					ok = a.catalog.IsValidCountryCode(v)
				}

				status := "valid"
				if !ok {
					status = "invalid"
					invalid++
				}
				fmt.Fprintf(a.stdout, "%s\t%s\t%s\n", v, kind, status)
			}
			if invalid > 0 {
				return exitWithCode(ExitInvalidInput, "%d of %d values invalid", invalid, len(args))
			}
			return nil
		},
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.stdout, "countrykit %s (commit %s, built %s)\n", Version, Commit, BuildTime)
			fmt.Fprintf(a.stdout, "countries: %d\n", a.catalog.Count())
			return nil
		},
	}
}

func (a *app) writeCountries(list []countrykit.Country) error {
	str, err := output.NewBatchResult(list).Format(a.cfg.Format)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, str)
	return nil
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
