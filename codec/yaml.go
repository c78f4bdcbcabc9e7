package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	statedict "github.com/reoring/statedict"
)

// ToYAML renders a state (a state dict or a leaf) as YAML.
func ToYAML(state any) ([]byte, error) {
	return yaml.Marshal(state)
}

// FromYAML loads a state dict from YAML bytes, enforcing the string-key
// invariant on every nesting level. YAML permits non-string mapping keys;
// those are rejected rather than coerced.
func FromYAML(data []byte) (statedict.StateDict, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, statedict.Issues{{
			Path:    "/",
			Code:    statedict.CodeParseError,
			Message: err.Error(),
			Cause:   err,
		}}
	}
	out, err := normalizeYAML(raw, "")
	if err != nil {
		return nil, err
	}
	return out.(statedict.StateDict), nil
}

// normalizeYAML walks the decoded document and rejects any mapping whose keys
// are not strings. path accumulates the location for error reporting.
func normalizeYAML(v any, path string) (any, error) {
	switch m := v.(type) {
	case map[string]any:
		out := make(statedict.StateDict, len(m))
		for k, mv := range m {
			nv, err := normalizeYAML(mv, path+"/"+k)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		for k := range m {
			if _, ok := k.(string); !ok {
				return nil, statedict.Issues{{
					Path:    pathOrRoot(path),
					Code:    statedict.CodeInvalidKey,
					Message: fmt.Sprintf("a state dict must only have string keys, encountered key %v of type %T", k, k),
				}}
			}
		}
		out := make(statedict.StateDict, len(m))
		for k, mv := range m {
			ks := k.(string)
			nv, err := normalizeYAML(mv, path+"/"+ks)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(m))
		for i, mv := range m {
			nv, err := normalizeYAML(mv, fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}

func pathOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
