// Package cli wires the composition engine to a line-oriented command:
// load a base statement, extend it clause by clause, print SQL and params.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Skediaio/literal-sql/dialect"
	"github.com/Skediaio/literal-sql/query"
	"github.com/Skediaio/literal-sql/render"
)

// RootOptions holds the non-clause flags of the root command.
type RootOptions struct {
	File    string
	Query   string
	Dialect string
}

// ValidDialects defines the allowed --dialect values.
var ValidDialects = []string{"postgres", "mysql", "named"}

// NewRootCommand builds the root command. rawArgs must be the unparsed
// argv (os.Args[1:]): clause flags are re-scanned from it because pflag
// does not preserve the interleaved order of different flags, and clause
// order is semantic.
func NewRootCommand(rawArgs []string) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "literal-sql",
		Short: "Compose SQL incrementally from a base query and clause flags",
		Long: "literal-sql reads a base SQL statement from --query or --file, applies each\n" +
			"clause flag in command-line order, and prints the normalized SQL followed by\n" +
			"the extracted parameter list.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidDialect(opts.Dialect) {
				return fmt.Errorf("invalid dialect %q: must be one of %v", opts.Dialect, ValidDialects)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, rawArgs)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "read the base query from this file")
	cmd.Flags().StringVar(&opts.Query, "query", "", "base query text")
	cmd.Flags().StringVar(&opts.Dialect, "dialect", "postgres", "placeholder style (postgres|mysql|named)")
	registerClauseFlags(cmd)

	return cmd
}

// Execute runs the root command against argv.
func Execute(rawArgs []string) error {
	cmd := NewRootCommand(rawArgs)
	cmd.SetArgs(rawArgs)
	return cmd.Execute()
}

func run(cmd *cobra.Command, opts *RootOptions, rawArgs []string) error {
	base, err := loadBase(opts)
	if err != nil {
		return err
	}

	q := query.Parse(base)
	for _, fragment := range collectClauses(rawArgs) {
		q = q.Apply(fragment)
	}

	out := cmd.OutOrStdout()

	if opts.Dialect == "named" {
		sql, params, err := render.Named(q)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sql)
		if len(params) > 0 {
			fmt.Fprintf(out, "\n-- params: %v\n", params)
		}
		return nil
	}

	r := render.New(dialectFor(opts.Dialect), nil)
	sql, params, err := r.Build(q)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, sql)
	if len(params) > 0 {
		fmt.Fprintf(out, "\n-- params: %v\n", params)
	}
	return nil
}

// loadBase resolves the base statement from --query or --file. Exactly one
// source is required.
func loadBase(opts *RootOptions) (string, error) {
	switch {
	case opts.Query != "" && opts.File != "":
		return "", fmt.Errorf("--query and --file are mutually exclusive")
	case opts.Query != "":
		return opts.Query, nil
	case opts.File != "":
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return "", fmt.Errorf("read base query: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("a base query is required: pass --query or --file")
	}
}

func dialectFor(name string) dialect.Dialect {
	if name == "mysql" {
		return dialect.NewMySQLDialect()
	}
	return dialect.NewPostgresDialect()
}

func isValidDialect(name string) bool {
	for _, d := range ValidDialects {
		if d == name {
			return true
		}
	}
	return false
}
