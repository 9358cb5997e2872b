package compiler

import (
	"errors"
	"fmt"

	"github.com/queryforge/pdbquery/internal/queryir"
)

// CompileErrorCode categorizes compile-time failures.
type CompileErrorCode string

const (
	// ErrMalformedQuery: non-list node where an operator application is
	// expected, an empty list, a missing operator, or an empty term list
	// for a variadic combinator.
	ErrMalformedQuery CompileErrorCode = "MalformedQuery"

	// ErrUnknownOperator: operator not present in the active dialect
	// table.
	ErrUnknownOperator CompileErrorCode = "UnknownOperator"

	// ErrUnsupportedInDialect: operator known to the language but
	// disallowed in the active dialect (e.g. subqueries in resource-v1).
	ErrUnsupportedInDialect CompileErrorCode = "UnsupportedInDialect"

	// ErrArity: wrong number of operands to a fixed-arity leaf.
	ErrArity CompileErrorCode = "ArityError"

	// ErrUnqueryableField: path references a field not queryable for
	// this dataset/operator.
	ErrUnqueryableField CompileErrorCode = "UnqueryableField"

	// ErrBadSubquery: project given a non-select-* child, or in-result
	// given a non-project child.
	ErrBadSubquery CompileErrorCode = "BadSubquery"

	// ErrType: fact numeric-inequality value that does not parse as a
	// number.
	ErrType CompileErrorCode = "TypeError"
)

// CompileError is the error type the compiler functions in this package
// raise for query errors; errors from the host primitives' Serialize and
// from the finalizer are returned unchanged. Code identifies the failure
// category; Message is human-readable; Node/Operator carry the offending
// AST fragment so a caller can report it without re-walking the tree.
type CompileError struct {
	Code     CompileErrorCode
	Message  string
	Operator string
	Node     queryir.Node
}

func (e *CompileError) Error() string {
	if e.Operator != "" {
		return fmt.Sprintf("%s: %s (operator %q)", e.Code, e.Message, e.Operator)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf extracts the CompileErrorCode from err via errors.As, reporting
// false when err is not a *CompileError. CompileError has no Is method
// (it always carries context, so comparing against a bare code sentinel
// is not meaningful); CodeIs is the convenience wrapper.
func CodeOf(err error) (CompileErrorCode, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Code, true
	}
	return "", false
}

// CodeIs reports whether err is a *CompileError with the given code.
func CodeIs(err error, code CompileErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

func malformed(node queryir.Node, format string, args ...any) *CompileError {
	return &CompileError{Code: ErrMalformedQuery, Message: fmt.Sprintf(format, args...), Node: node}
}

func unknownOperator(node queryir.Node, op string) *CompileError {
	return &CompileError{
		Code:     ErrUnknownOperator,
		Message:  fmt.Sprintf("unknown operator %q in term %v", op, queryir.ToAny(node)),
		Operator: op,
		Node:     node,
	}
}

func unsupportedInDialect(op string) *CompileError {
	return &CompileError{
		Code:     ErrUnsupportedInDialect,
		Message:  fmt.Sprintf("operator %q is not supported in this dialect", op),
		Operator: op,
	}
}

func arityError(op string, want int, got int) *CompileError {
	return &CompileError{
		Code:     ErrArity,
		Message:  fmt.Sprintf("%q requires %d operand(s), got %d", op, want, got),
		Operator: op,
	}
}

func unqueryableField(kindLabel, field, allowed string) *CompileError {
	return &CompileError{
		Code:    ErrUnqueryableField,
		Message: fmt.Sprintf("field %q is not queryable for %s; must be one of: %s", field, kindLabel, allowed),
	}
}

func badSubquery(message string) *CompileError {
	return &CompileError{Code: ErrBadSubquery, Message: message}
}

func typeError(format string, args ...any) *CompileError {
	return &CompileError{Code: ErrType, Message: fmt.Sprintf(format, args...)}
}
