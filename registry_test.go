package statedict_test

import (
	"context"
	"errors"
	"testing"

	statedict "github.com/reoring/statedict"
)

type celsius struct{ deg float64 }

type fahrenheit struct{ deg float64 }

func TestRegister_DuplicateWithoutOverride(t *testing.T) {
	tag := statedict.TagFor[celsius]()
	enc := func(ctx context.Context, target any) (any, error) {
		return statedict.StateDict{"deg": target.(celsius).deg}, nil
	}
	dec := func(ctx context.Context, target, state any) (any, error) {
		return target, nil
	}
	if err := statedict.Register(tag, enc, dec, false); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	err := statedict.Register(tag, enc, dec, false)
	if !errors.Is(err, statedict.ErrDuplicateRegistration) {
		t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
	}
}

func TestRegister_OverrideReplacesConverter(t *testing.T) {
	ctx := context.Background()
	tag := statedict.TagFor[fahrenheit]()
	v1 := func(ctx context.Context, target any) (any, error) {
		return statedict.StateDict{"deg": target.(fahrenheit).deg}, nil
	}
	dec := func(ctx context.Context, target, state any) (any, error) {
		return target, nil
	}
	if err := statedict.Register(tag, v1, dec, false); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	v2 := func(ctx context.Context, target any) (any, error) {
		return statedict.StateDict{"degrees": target.(fahrenheit).deg}, nil
	}
	if err := statedict.Register(tag, v2, dec, true); err != nil {
		t.Fatalf("override registration failed: %v", err)
	}

	state, err := statedict.Encode(ctx, fahrenheit{deg: 98.6})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	sd := state.(statedict.StateDict)
	if _, ok := sd["degrees"]; !ok {
		t.Fatalf("expected the overriding encoder to run, got %v", sd)
	}
}

func TestRegister_RejectsIncompletePair(t *testing.T) {
	if err := statedict.Register(statedict.TagFor[int](), nil, nil, false); err == nil {
		t.Fatalf("expected error for nil converter pair")
	}
	if err := statedict.Register(nil, nil, nil, false); err == nil {
		t.Fatalf("expected error for nil tag")
	}
}

func TestLookup_UnregisteredTag(t *testing.T) {
	type unseen struct{ _ int }
	if _, ok := statedict.Lookup(statedict.TagFor[unseen]()); ok {
		t.Fatalf("expected no entry for unregistered tag")
	}
}

func TestRegisteredTags_IncludesBuiltins(t *testing.T) {
	tags := statedict.RegisteredTags()
	found := false
	for _, tag := range tags {
		if tag == statedict.RecordTag {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected RecordTag among built-in registrations, got %v", tags)
	}
}
