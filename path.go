package statedict

import (
	"context"
	"strings"
)

// ---- Decode-time path context (internal wiring, read via CurrentPath) ----

type contextKey int

const _ctxKeyPath contextKey = iota

// withPathSegment derives a child context whose path gains one trailing
// segment. Contexts are immutable, so the segment is released on every exit
// path (success or failure) simply by the child context going out of scope,
// and concurrent decodes never observe each other's paths.
func withPathSegment(ctx context.Context, name string) context.Context {
	parent, _ := ctx.Value(_ctxKeyPath).([]string)
	segs := make([]string, len(parent)+1)
	copy(segs, parent)
	segs[len(parent)] = name
	return context.WithValue(ctx, _ctxKeyPath, segs)
}

// CurrentPath returns the '/'-joined decode path active in ctx. It is callable
// from within any decode function to build contextual error messages; at the
// top level (outside any decode) it returns the empty string.
func CurrentPath(ctx context.Context) string {
	segs, _ := ctx.Value(_ctxKeyPath).([]string)
	return strings.Join(segs, "/")
}
