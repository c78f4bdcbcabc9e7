package statedict

// Partial is a callable bundled with positional and keyword arguments. Only
// the arguments take part in conversion; Func is an opaque reference that is
// never serialized, and Decode always rebinds the function from the live
// target, not from state.
type Partial struct {
	Func     any
	Args     []any
	Keywords map[string]any
}

// NewPartial bundles fn with its bound arguments. The argument collections are
// stored as given; callers who need isolation should pass copies.
func NewPartial(fn any, args []any, keywords map[string]any) Partial {
	return Partial{Func: fn, Args: args, Keywords: keywords}
}
