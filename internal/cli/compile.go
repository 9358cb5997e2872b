package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/queryforge/pdbquery/internal/compiler"
	"github.com/queryforge/pdbquery/internal/dialect"
	"github.com/queryforge/pdbquery/internal/value"
)

// CompileResult is the success payload for the compile command.
type CompileResult struct {
	SQL    string `json:"sql"`
	Params []any  `json:"params"`
}

// NewCompileCommand creates the compile command: read a query document,
// compile it against the configured dialect, and print the finalized SQL
// and parameter vector.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <query-file>",
		Short: "Compile a query document to parameterized SQL",
		Long: `Compile a nested symbolic query (JSON or YAML) into a parameterized SQL
statement for the configured dialect.

Example:
  pdbquery compile --dialect resource-v2 query.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCompile(opts *RootOptions, path string, cmd *cobra.Command) error {
	traceID := uuid.NewString()
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	logger := slog.Default().With("trace_id", traceID, "command", "compile")

	name, _ := dialect.ParseName(opts.Dialect) // validated by PersistentPreRunE
	kind, _ := name.Kind()
	table, err := tableFor(name)
	if err != nil {
		return outputCompileError(formatter, traceID, "E_DIALECT", err.Error())
	}

	logger.Debug("loading query document", "path", path)
	node, err := LoadQueryDocument(path)
	if err != nil {
		return outputCompileError(formatter, traceID, "E_LOAD", err.Error())
	}

	logger.Debug("compiling term", "dialect", name)
	var sql string
	var params []value.Param
	switch kind {
	case dialect.Resource:
		sql, params, err = compiler.ResourceQueryToSQL(table, node)
	case dialect.Fact:
		sql, params, err = compiler.FactQueryToSQL(table, node)
	}
	if err != nil {
		return outputCompileFailure(formatter, traceID, err)
	}

	logger.Info("finalized statement", "sql", sql, "param_count", len(params))

	result := CompileResult{SQL: sql, Params: value.NativeAll(params)}
	if err := formatter.Success(traceID, result); err != nil {
		return err
	}
	return nil
}

func outputCompileError(formatter *OutputFormatter, traceID, code, message string) error {
	_ = formatter.Error(traceID, code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

func outputCompileFailure(formatter *OutputFormatter, traceID string, err error) error {
	code := "E_COMPILE"
	var ce *compiler.CompileError
	if errors.As(err, &ce) {
		code = string(ce.Code)
	}
	_ = formatter.Error(traceID, code, err.Error(), nil)
	return WrapExitError(ExitFailure, fmt.Sprintf("compilation failed: %s", code), err)
}
