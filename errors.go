package statedict

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"
	CodeInvalidKey     = "invalid_key"
	CodeKeyCollision   = "key_collision"
	CodeLengthMismatch = "length_mismatch"
	CodeMissingKey     = "missing_key"
	CodeFieldMismatch  = "field_mismatch"
	// Codec-side codes (duplicate keys and parse failures in persisted state).
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
	CodeTruncated    = "truncated"
)

// ErrDuplicateRegistration indicates Register was called for a tag that already
// has a converter pair and override was not requested.
var ErrDuplicateRegistration = errors.New("statedict: converter already registered")

// Issue represents a single structural mismatch.
type Issue struct {
	Path    string // Decode path, segments joined by '/' (for example: ./outer/inner).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"want":3, "got":2})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of structural errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. length_mismatch at ./outer/inner: size mismatch, got 3 and 2
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
