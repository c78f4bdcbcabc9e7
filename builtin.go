package statedict

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/reoring/statedict/i18n"
)

// Built-in converters for the standard composite shapes. Registered in init;
// external collaborators extend the same registry via Register.

func init() {
	mustRegister(TagFor[[]any](), sequenceToState, sequenceFromState)
	mustRegister(TagFor[map[string]any](), mappingToState, mappingFromState)
	mustRegister(TagFor[map[any]any](), mappingToState, mappingFromState)
	mustRegister(RecordTag, recordToState, recordFromState)
	mustRegister(TagFor[Partial](), partialToState, partialFromState)
}

func mustRegister(tag Tag, enc EncodeFunc, dec DecodeFunc) {
	if err := Register(tag, enc, dec, false); err != nil {
		panic(err)
	}
}

// ---- ordered sequence ----

func sequenceToState(ctx context.Context, target any) (any, error) {
	xs := target.([]any)
	out := make(StateDict, len(xs))
	for i, x := range xs {
		enc, err := Encode(ctx, x)
		if err != nil {
			return nil, err
		}
		out[strconv.Itoa(i)] = enc
	}
	return out, nil
}

func sequenceFromState(ctx context.Context, target, state any) (any, error) {
	xs := target.([]any)
	sd, err := asStateDict(ctx, state)
	if err != nil {
		return nil, err
	}
	if len(sd) != len(xs) {
		return nil, Issues{{
			Path:    CurrentPath(ctx),
			Code:    CodeLengthMismatch,
			Message: fmt.Sprintf("%s, got %d and %d", i18n.T(CodeLengthMismatch, nil), len(xs), len(sd)),
			Params:  map[string]any{"want": len(xs), "got": len(sd)},
		}}
	}
	out := make([]any, len(xs))
	for i := range xs {
		key := strconv.Itoa(i)
		sv, ok := sd[key]
		if !ok {
			return nil, Issues{{
				Path:    CurrentPath(ctx),
				Code:    CodeMissingKey,
				Message: fmt.Sprintf("%s, state dict has no entry for index %s", i18n.T(CodeMissingKey, nil), key),
				Params:  map[string]any{"keys": []string{key}},
			}}
		}
		dv, err := DecodeNamed(ctx, xs[i], sv, key)
		if err != nil {
			return nil, err
		}
		out[i] = dv
	}
	return out, nil
}

// ---- key-value mapping ----

// One reflection-based implementation serves both map[string]any and
// map[any]any; the target's concrete map type is preserved on decode.

func mappingToState(ctx context.Context, target any) (any, error) {
	rv := reflect.ValueOf(target)
	out := make(StateDict, rv.Len())
	origin := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		ks := keyString(k)
		if prev, dup := origin[ks]; dup {
			return nil, Issues{{
				Path:    issuePath(ctx),
				Code:    CodeKeyCollision,
				Message: fmt.Sprintf("%s, %q produced by both %#v and %#v", i18n.T(CodeKeyCollision, nil), ks, prev, k),
				Params:  map[string]any{"key": ks},
			}}
		}
		origin[ks] = k
		enc, err := Encode(ctx, iter.Value().Interface())
		if err != nil {
			return nil, err
		}
		out[ks] = enc
	}
	return out, nil
}

func mappingFromState(ctx context.Context, target, state any) (any, error) {
	sd, err := asStateDict(ctx, state)
	if err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(target)
	var missing []string
	iter := rv.MapRange()
	for iter.Next() {
		ks := keyString(iter.Key().Interface())
		if _, ok := sd[ks]; !ok {
			missing = append(missing, ks)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, Issues{{
			Path:    CurrentPath(ctx),
			Code:    CodeMissingKey,
			Message: fmt.Sprintf("%s, target keys %v are not present in the state dict", i18n.T(CodeMissingKey, nil), missing),
			Params:  map[string]any{"keys": missing},
		}}
	}
	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	elem := rv.Type().Elem()
	iter = rv.MapRange()
	for iter.Next() {
		ks := keyString(iter.Key().Interface())
		dv, err := DecodeNamed(ctx, iter.Value().Interface(), sd[ks], ks)
		if err != nil {
			return nil, err
		}
		out.SetMapIndex(iter.Key(), valueOrZero(dv, elem))
	}
	return out.Interface(), nil
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// valueOrZero guards SetMapIndex against nil decoded leaves.
func valueOrZero(v any, t reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(v)
}

// ---- fixed-field record ----

func recordToState(ctx context.Context, target any) (any, error) {
	rec := target.(Record)
	fields := rec.Fields()
	out := make(StateDict, len(fields))
	for _, f := range fields {
		enc, err := Encode(ctx, rec.Field(f))
		if err != nil {
			return nil, err
		}
		out[f] = enc
	}
	return out, nil
}

func recordFromState(ctx context.Context, target, state any) (any, error) {
	rec := target.(Record)
	sd, err := asStateDict(ctx, state)
	if err != nil {
		return nil, err
	}
	fields := rec.Fields()
	fieldSet := make(map[string]struct{}, len(fields))
	var missing []string
	for _, f := range fields {
		fieldSet[f] = struct{}{}
		if _, ok := sd[f]; !ok {
			missing = append(missing, f)
		}
	}
	var unexpected []string
	for k := range sd {
		if _, ok := fieldSet[k]; !ok {
			unexpected = append(unexpected, k)
		}
	}
	if len(missing) > 0 || len(unexpected) > 0 {
		sort.Strings(missing)
		sort.Strings(unexpected)
		return nil, Issues{{
			Path:    CurrentPath(ctx),
			Code:    CodeFieldMismatch,
			Message: fmt.Sprintf("%s, missing %v, unexpected %v", i18n.T(CodeFieldMismatch, nil), missing, unexpected),
			Params:  map[string]any{"missing": missing, "unexpected": unexpected},
		}}
	}
	decoded := make(map[string]any, len(fields))
	for _, f := range fields {
		dv, err := DecodeNamed(ctx, rec.Field(f), sd[f], f)
		if err != nil {
			return nil, err
		}
		decoded[f] = dv
	}
	return rec.WithFields(decoded)
}

// ---- partial application ----

func partialToState(ctx context.Context, target any) (any, error) {
	p := target.(Partial)
	args, err := Encode(ctx, p.Args)
	if err != nil {
		return nil, err
	}
	keywords, err := Encode(ctx, p.Keywords)
	if err != nil {
		return nil, err
	}
	return StateDict{"args": args, "keywords": keywords}, nil
}

func partialFromState(ctx context.Context, target, state any) (any, error) {
	p := target.(Partial)
	sd, err := asStateDict(ctx, state)
	if err != nil {
		return nil, err
	}
	args, err := DecodeNamed(ctx, p.Args, sd["args"], "args")
	if err != nil {
		return nil, err
	}
	keywords, err := DecodeNamed(ctx, p.Keywords, sd["keywords"], "keywords")
	if err != nil {
		return nil, err
	}
	// Func is rebound from the live target; function identity is never
	// restored from serialized state.
	return Partial{
		Func:     p.Func,
		Args:     args.([]any),
		Keywords: keywords.(map[string]any),
	}, nil
}
