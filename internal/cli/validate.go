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

// ValidateResult is the success payload for the validate command: a
// dry-run compile_term, reporting the compiled fragment without ever
// calling the finalizer (so UnknownOperator/UnqueryableField surface
// without requiring a fully well-formed, finalizable query).
type ValidateResult struct {
	Valid  bool   `json:"valid"`
	Where  string `json:"where,omitempty"`
	Joins  []string `json:"joins,omitempty"`
	Params []any  `json:"params,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <query-file>",
		Short: "Dry-run compile a query without finalizing it",
		Long: `Compile a query's root term without building the final SELECT statement.
Catches UnknownOperator, UnqueryableField, and arity errors without requiring
the result to already be a finalizable boolean fragment.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	traceID := uuid.NewString()
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	logger := slog.Default().With("trace_id", traceID, "command", "validate")

	name, _ := dialect.ParseName(opts.Dialect)
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
	term, err := compiler.CompileTerm(table, node)
	if err != nil {
		code := "E_COMPILE"
		var ce *compiler.CompileError
		if errors.As(err, &ce) {
			code = string(ce.Code)
		}
		_ = formatter.Error(traceID, code, err.Error(), nil)
		return WrapExitError(ExitFailure, fmt.Sprintf("validation failed: %s", code), err)
	}

	result := ValidateResult{Valid: true}
	switch t := term.(type) {
	case dialect.FragmentTerm:
		result.Where = t.Where
		result.Params = value.NativeAll(t.Params)
		for _, j := range t.Joins {
			result.Joins = append(result.Joins, string(j))
		}
	case dialect.FinalizedSelect:
		result.Where = t.SQL
		result.Params = value.NativeAll(t.Params)
	}

	logger.Info("query valid")
	return formatter.Success(traceID, result)
}
