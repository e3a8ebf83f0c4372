package value

import "github.com/cwbudde/frst/internal/langerr"

// Callable is the common interface shared by built-in functions, user
// closures, and weak self-reference closures (spec.md §3.4, component E).
type Callable interface {
	// Call invokes the callable with the given positional arguments. May
	// return a recoverable error.
	Call(args []*Value) (*Value, error)
	// DebugDump renders a diagnostic description of the callable.
	DebugDump() string
	// Name returns the callable's name for arity-error messages, or ""
	// for anonymous closures.
	Name() string
}

// Arity describes a callable's accepted argument count: at least Min,
// at most Max (nil meaning unbounded).
type Arity struct {
	Min int
	Max *int // nil = unbounded
}

// CheckArity enforces the arity contract described in spec.md §4.E,
// producing the exact error message shapes specified there.
func CheckArity(name string, a Arity, n int) error {
	if n < a.Min {
		return langerr.User(
			"Function %s called with insufficient arguments. Called with %d but requires at least %d.",
			name, n, a.Min)
	}
	if a.Max != nil && n > *a.Max {
		return langerr.User(
			"Function %s called with too many arguments. Called with %d but accepts no more than %d.",
			name, n, *a.Max)
	}
	return nil
}

// MaxOf is a convenience constructor for an Arity.Max pointer.
func MaxOf(n int) *int { return &n }

// Builtin is a native Go function exposed to user code with an explicit
// arity contract.
type Builtin struct {
	name  string
	arity Arity
	fn    func(args []*Value) (*Value, error)
}

// NewBuiltin creates a Builtin with the given name, arity, and
// implementation. The implementation is not responsible for arity checking;
// Call performs it uniformly.
func NewBuiltin(name string, min int, max *int, fn func(args []*Value) (*Value, error)) *Builtin {
	return &Builtin{name: name, arity: Arity{Min: min, Max: max}, fn: fn}
}

// Call implements Callable, enforcing arity before delegating to fn.
func (b *Builtin) Call(args []*Value) (*Value, error) {
	if err := CheckArity(b.name, b.arity, len(args)); err != nil {
		return nil, err
	}
	return b.fn(args)
}

// DebugDump implements Callable.
func (b *Builtin) DebugDump() string { return "<builtin:" + b.name + ">" }

// Name implements Callable.
func (b *Builtin) Name() string { return b.name }
