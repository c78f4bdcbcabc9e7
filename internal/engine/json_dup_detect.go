package engine

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// DuplicateStrictness controls duplicate key handling in detection helpers.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	key          string // last object key, for path rendering
	index        int    // next array index, for path rendering
	expectingKey bool
}

// DetectJSONDuplicateKeysBytes detects duplicate object keys from a JSON byte slice.
// A persisted state dict with duplicate keys would silently lose entries on
// load, so callers surface these before decoding. If onDup is DupIgnore, no
// issues are produced. maxIssues < 0 means unlimited; 0 means disabled; >0 sets limit.
func DetectJSONDuplicateKeysBytes(data []byte, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return detectJSONDuplicateKeys(dec, onDup, maxIssues)
}

// DetectJSONDuplicateKeysReader detects duplicate object keys from an io.Reader.
// Note: this will consume the reader fully.
func DetectJSONDuplicateKeysReader(r io.Reader, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore {
		return nil, nil
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return detectJSONDuplicateKeys(dec, onDup, maxIssues)
}

func detectJSONDuplicateKeys(dec *json.Decoder, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	var issues []SimpleIssue
	var stack []dupFrame

	truncated := false
	appendIssue := func(i SimpleIssue) {
		if maxIssues == 0 || truncated {
			return
		}
		issues = append(issues, i)
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, SimpleIssue{Code: "truncated", Path: "/", Message: "max issues reached"})
			truncated = true
		}
	}

	// afterValue restores key expectation on the enclosing object and advances
	// array indices, once a complete value has been consumed.
	afterValue := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			switch top.kind {
			case kindObject:
				top.expectingKey = true
			case kindArray:
				top.index++
			}
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			appendIssue(SimpleIssue{Code: "parse_error", Path: pathOf(stack), Message: err.Error()})
			break
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true})
			case '[':
				stack = append(stack, dupFrame{kind: kindArray})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				afterValue()
			}
		case string:
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						top.key = v
						appendIssue(SimpleIssue{Code: "duplicate_key", Path: pathOf(stack), Message: "key '" + v + "' duplicated"})
						if onDup == DupError {
							return issues, nil
						}
					}
					top.keys[v] = struct{}{}
					top.key = v
					top.expectingKey = false
					continue
				}
			}
			afterValue()
		default:
			afterValue()
		}
	}

	return issues, nil
}

// pathOf renders the position of the innermost frame as a JSON-pointer-like path.
func pathOf(stack []dupFrame) string {
	if len(stack) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for i := range stack {
		f := &stack[i]
		b.WriteByte('/')
		if f.kind == kindObject {
			b.WriteString(f.key)
		} else {
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	return b.String()
}
