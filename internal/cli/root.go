package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queryforge/pdbquery/internal/dialect"
)

// RootOptions holds global flags shared by every subcommand.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
	Dialect string // "resource-v1" | "resource-v2" | "fact-v2"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the pdbquery root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pdbquery",
		Short: "pdbquery - structured query to SQL compiler",
		Long:  "Compiles nested symbolic queries over resources and facts into parameterized SQL.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig("pdbquery.yaml")
			if err != nil {
				return err
			}
			cfg.ApplyDefaults(opts, cmd.Flags().Changed("dialect"), cmd.Flags().Changed("format"))

			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, ok := dialect.ParseName(opts.Dialect); !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid dialect %q: must be one of %v", opts.Dialect, dialect.Names()))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.Dialect, "dialect", string(dialect.ResourceV2), "query dialect (resource-v1|resource-v2|fact-v2)")

	cmd.AddCommand(NewCompileCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
