package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"

	"github.com/snipdrift/sdk/match"
)

// unscored is the value bound to the score variable when a result carries
// no similarity score. Scores are always in [0, 100], so -1 cannot collide.
const unscored = -1

// Filter is a compiled CEL predicate over comparison results.
// A Filter is safe for concurrent use.
type Filter struct {
	expr    string
	program cel.Program
}

// New compiles expr into a Filter. The expression must evaluate to a
// boolean; any other output type is a compile error.
func New(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("status", cel.StringType),
		cel.Variable("score", cel.IntType),
		cel.Variable("old_id", cel.StringType),
		cel.Variable("new_id", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter environment: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, fmt.Errorf("failed to compile filter %q: %w", expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(types.BoolType) {
		return nil, fmt.Errorf("filter %q must evaluate to bool, got %s", expr, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to build filter program: %w", err)
	}

	return &Filter{expr: expr, program: program}, nil
}

// Match reports whether the result satisfies the filter expression.
func (f *Filter) Match(r match.Result) (bool, error) {
	score := unscored
	if v, ok := r.ScoreValue(); ok {
		score = v
	}

	out, _, err := f.program.Eval(map[string]any{
		"status": r.Status.String(),
		"score":  score,
		"old_id": r.OldID,
		"new_id": r.NewID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter %q: %w", f.expr, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, expected bool", f.expr, out.Value())
	}
	return matched, nil
}

// Apply returns the results that satisfy the filter, preserving order.
func (f *Filter) Apply(results []match.Result) ([]match.Result, error) {
	filtered := make([]match.Result, 0, len(results))
	for _, r := range results {
		matched, err := f.Match(r)
		if err != nil {
			return nil, err
		}
		if matched {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// String returns the source expression the filter was compiled from.
func (f *Filter) String() string {
	return f.expr
}
