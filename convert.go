package statedict

import (
	"context"
	"fmt"
	"reflect"

	"github.com/reoring/statedict/i18n"
)

// StateDict is the canonical nested representation: string keys at every
// level, values either leaves or nested state dicts.
type StateDict = map[string]any

// Encode returns the state representation of target. Unregistered types are
// leaves and come back unchanged; registered types go through their encode
// function, and any map it produces is checked for the string-key invariant.
func Encode(ctx context.Context, target any) (any, error) {
	conv, ok := Lookup(TagOf(target))
	if !ok {
		return target, nil
	}
	state, err := conv.Encode(ctx, target)
	if err != nil {
		return nil, err
	}
	if err := checkStateKeys(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Decode restores a copy of target with leaf values taken from state. The
// target drives dispatch and acts as the structural template; state is
// validated against it, never the other way around.
func Decode(ctx context.Context, target, state any) (any, error) {
	return DecodeNamed(ctx, target, state, ".")
}

// DecodeNamed is Decode with an explicit branch name recorded on the decode
// path. Converter implementations recurse through it so nested failures
// report the full path via CurrentPath.
func DecodeNamed(ctx context.Context, target, state any, name string) (any, error) {
	conv, ok := Lookup(TagOf(target))
	if !ok {
		return state, nil
	}
	return conv.Decode(withPathSegment(ctx, name), target, state)
}

// checkStateKeys enforces the string-key invariant on any map produced by an
// encode function. Non-map results are leaves and pass unchecked.
func checkStateKeys(ctx context.Context, state any) error {
	rv := reflect.ValueOf(state)
	if rv.Kind() != reflect.Map {
		return nil
	}
	for _, k := range rv.MapKeys() {
		kv := k
		if kv.Kind() == reflect.Interface {
			kv = kv.Elem()
		}
		if kv.Kind() != reflect.String {
			key := k.Interface()
			return Issues{{
				Path:    issuePath(ctx),
				Code:    CodeInvalidKey,
				Message: fmt.Sprintf("%s, encountered key %v of type %T", i18n.T(CodeInvalidKey, nil), key, key),
				Params:  map[string]any{"key": fmt.Sprint(key), "type": fmt.Sprintf("%T", key)},
			}}
		}
	}
	return nil
}

// asStateDict asserts that a decode input is a state dict.
func asStateDict(ctx context.Context, state any) (StateDict, error) {
	sd, ok := state.(StateDict)
	if !ok {
		return nil, Issues{{
			Path:    issuePath(ctx),
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("%s, expected a state dict, got %T", i18n.T(CodeInvalidType, nil), state),
			Params:  map[string]any{"got": fmt.Sprintf("%T", state)},
		}}
	}
	return sd, nil
}

func issuePath(ctx context.Context) string {
	if p := CurrentPath(ctx); p != "" {
		return p
	}
	return "/"
}
