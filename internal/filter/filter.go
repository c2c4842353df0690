// Package filter selects table rows with CEL expressions.
//
// Each row is exposed to the expression three ways:
//
//	_      map of header name to cell value
//	cells  list of cell values in column order
//	index  zero-based row number
//
// Cell text that parses as an integer, float or boolean is passed as that
// type so comparisons like `_.age > 30` work on numeric columns.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"
)

// Filter is a compiled row predicate.
type Filter struct {
	expr string
	ast  *cel.Ast
	prg  cel.Program
}

// newRowEnv creates the CEL environment rows are evaluated in.
func newRowEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	allOpts := make([]cel.EnvOption, 0, 7+len(opts))
	allOpts = append(allOpts,
		cel.Variable("_", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("cells", cel.ListType(cel.DynType)),
		cel.Variable("index", cel.IntType),
		cel.CrossTypeNumericComparisons(true),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
	)
	allOpts = append(allOpts, opts...)
	return cel.NewEnv(allOpts...)
}

// Compile parses and type-checks expr.
func Compile(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty filter expression")
	}
	env, err := newRowEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Filter{expr: expr, ast: ast, prg: prg}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expr
}

// Match evaluates the filter for one row.
func (f *Filter) Match(header []string, row []string, index int) (bool, error) {
	out, _, err := f.prg.Eval(map[string]any{
		"_":     Record(header, row),
		"cells": typedCells(row),
		"index": int64(index),
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := out.(types.Bool)
	if !ok {
		return false, fmt.Errorf("filter %q must evaluate to a bool, got %s", f.expr, out.Type().TypeName())
	}
	return bool(b), nil
}

// Apply returns the rows the filter accepts, in order.
func (f *Filter) Apply(header []string, rows [][]string) ([][]string, error) {
	kept := make([][]string, 0, len(rows))
	for i, row := range rows {
		ok, err := f.Match(header, row, i)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if ok {
			kept = append(kept, row)
		}
	}
	return kept, nil
}

// Record maps header names to typed cell values. Missing cells are empty
// strings; cells without a header name are left out.
func Record(header []string, row []string) map[string]any {
	rec := make(map[string]any, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		rec[name] = typed(cell)
	}
	return rec
}

func typedCells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		out[i] = typed(c)
	}
	return out
}

func typed(s string) any {
	t := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil && strings.ContainsAny(t, "0123456789") {
		return f
	}
	if t == "true" || t == "false" {
		return t == "true"
	}
	return s
}
