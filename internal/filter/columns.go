package filter

import (
	"fmt"
	"slices"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Columns returns the header names the expression reads through `_`, either
// as `_.name` or `_["name"]`, sorted and without duplicates. Presence tests
// made with has() are not counted.
func (f *Filter) Columns() []string {
	if f.ast == nil {
		return nil
	}
	parsed, err := cel.AstToParsedExpr(f.ast)
	if err != nil {
		return nil
	}
	seen := map[string]struct{}{}
	collectColumns(parsed.GetExpr(), seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CheckColumns reports the first column the expression reads that is not in
// header.
func (f *Filter) CheckColumns(header []string) error {
	for _, name := range f.Columns() {
		if !slices.Contains(header, name) {
			return fmt.Errorf("filter %q references unknown column %q", f.expr, name)
		}
	}
	return nil
}

func isRoot(e *exprpb.Expr) bool {
	id := e.GetIdentExpr()
	return id != nil && id.GetName() == "_"
}

func collectColumns(e *exprpb.Expr, seen map[string]struct{}) {
	if e == nil {
		return
	}
	switch e.ExprKind.(type) {
	case *exprpb.Expr_SelectExpr:
		sel := e.GetSelectExpr()
		if isRoot(sel.GetOperand()) {
			if !sel.GetTestOnly() {
				seen[sel.GetField()] = struct{}{}
			}
			return
		}
		collectColumns(sel.GetOperand(), seen)

	case *exprpb.Expr_CallExpr:
		call := e.GetCallExpr()
		args := call.GetArgs()
		if call.GetFunction() == "_[_]" && len(args) == 2 && isRoot(args[0]) {
			if key := args[1].GetConstExpr(); key != nil {
				if s, ok := key.ConstantKind.(*exprpb.Constant_StringValue); ok {
					seen[s.StringValue] = struct{}{}
					return
				}
			}
		}
		collectColumns(call.GetTarget(), seen)
		for _, arg := range args {
			collectColumns(arg, seen)
		}

	case *exprpb.Expr_ListExpr:
		for _, elem := range e.GetListExpr().GetElements() {
			collectColumns(elem, seen)
		}

	case *exprpb.Expr_StructExpr:
		for _, entry := range e.GetStructExpr().GetEntries() {
			collectColumns(entry.GetMapKey(), seen)
			collectColumns(entry.GetValue(), seen)
		}

	case *exprpb.Expr_ComprehensionExpr:
		c := e.GetComprehensionExpr()
		collectColumns(c.GetIterRange(), seen)
		collectColumns(c.GetAccuInit(), seen)
		collectColumns(c.GetLoopCondition(), seen)
		collectColumns(c.GetLoopStep(), seen)
		collectColumns(c.GetResult(), seen)
	}
}
