package expr

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"golang.org/x/text/language"

	"github.com/grammatek/KeyboardKit/pkg/locale"
)

// ErrNotBool indicates that a filter expression did not evaluate to a bool.
var ErrNotBool = errors.New("expression did not evaluate to a bool")

// Protect CEL environment creation and compilation from concurrent access.
var celMutex sync.Mutex

// Environment provides a thread-safe wrapper around a [*cel.Env] with the
// locale variables declared.
type Environment struct {
	env *cel.Env
}

// NewEnvironment creates a new [Environment].
func NewEnvironment(opts ...cel.EnvOption) (*Environment, error) {
	env, err := createEnvironment(opts...)
	if err != nil {
		return nil, err
	}

	return &Environment{env: env}, nil
}

// MustNewEnvironment creates a new [Environment] and panics on error.
func MustNewEnvironment(opts ...cel.EnvOption) *Environment {
	env, err := NewEnvironment(opts...)
	if err != nil {
		panic(err)
	}

	return env
}

func createEnvironment(opts ...cel.EnvOption) (*cel.Env, error) {
	celMutex.Lock()
	defer celMutex.Unlock()

	opts = append(opts, cel.Lib(&lib{}))

	celEnv, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}

	return celEnv, nil
}

// Filter is a compiled locale filter.
type Filter struct {
	program    cel.Program
	expression string
}

// Compile compiles a filter expression. The expression must have a bool
// output type.
func (e *Environment) Compile(expression string) (*Filter, error) {
	celMutex.Lock()
	defer celMutex.Unlock()

	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile expression: %w", issues.Err())
	}

	if !ast.OutputType().IsExactType(cel.BoolType) && !ast.OutputType().IsExactType(cel.DynType) {
		return nil, fmt.Errorf("%w: %q has type %s", ErrNotBool, expression, ast.OutputType())
	}

	program, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}

	return &Filter{program: program, expression: expression}, nil
}

// Match evaluates the filter against a single locale.
func (f *Filter) Match(l locale.Locale) (bool, error) {
	result, _, err := f.program.Eval(Variables(l))
	if err != nil {
		return false, fmt.Errorf("evaluate %q for %s: %w", f.expression, l, err)
	}

	match, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T", ErrNotBool, f.expression, result.Value())
	}

	return match, nil
}

// Apply returns the locales in ls that match the filter, in input order.
func (f *Filter) Apply(ls []locale.Locale) ([]locale.Locale, error) {
	matched := make([]locale.Locale, 0, len(ls))

	for _, l := range ls {
		ok, err := f.Match(l)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, l)
		}
	}

	return matched, nil
}

func (f *Filter) String() string {
	return f.expression
}

// Variables returns the CEL activation for l.
func Variables(l locale.Locale) map[string]any {
	base, _ := l.Tag().Base()
	region, conf := l.Tag().Region()

	regionStr := ""
	if conf == language.Exact {
		regionStr = region.String()
	}

	return map[string]any{
		"id":          l.ID(),
		"name":        l.LocalizedName(),
		"displayName": l.DisplayName(),
		"flag":        l.Flag(),
		"language":    base.String(),
		"region":      regionStr,
		"ltr":         l.IsLeftToRight(),
		"rtl":         l.IsRightToLeft(),
	}
}

// FilterLocales compiles expression in a new [Environment] and applies it to
// ls. An empty expression returns ls unchanged.
func FilterLocales(expression string, ls []locale.Locale) ([]locale.Locale, error) {
	if expression == "" {
		return ls, nil
	}

	env, err := NewEnvironment()
	if err != nil {
		return nil, err
	}

	f, err := env.Compile(expression)
	if err != nil {
		return nil, err
	}

	return f.Apply(ls)
}

// SelectLocales filters ls with expression and sorts the result by native
// name, with first moved to the front when it is defined.
func SelectLocales(expression string, first locale.Locale, ls []locale.Locale) ([]locale.Locale, error) {
	selected, err := FilterLocales(expression, ls)
	if err != nil {
		return nil, err
	}

	if !first.IsDefined() {
		return locale.Sort(selected), nil
	}

	return locale.SortInsertFirst(selected, first), nil
}
