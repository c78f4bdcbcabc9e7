package codec_test

import (
	"context"
	"reflect"
	"testing"

	statedict "github.com/reoring/statedict"
	"github.com/reoring/statedict/codec"
)

func TestYAML_RoundTripThroughWire(t *testing.T) {
	ctx := context.Background()
	target := map[string]any{
		"model": map[string]any{
			"weights": []any{"w0", "w1"},
		},
		"name": "run-1",
	}
	state, err := statedict.Encode(ctx, target)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	data, err := codec.ToYAML(state)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	loaded, err := codec.FromYAML(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	restored, err := statedict.Decode(ctx, target, loaded)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(restored, target) {
		t.Fatalf("round trip mismatch: got %v, want %v", restored, target)
	}
}

func TestFromYAML_ParseError(t *testing.T) {
	_, err := codec.FromYAML([]byte("a:\n\t- tabs are not yaml indentation"))
	iss, ok := statedict.AsIssues(err)
	if !ok || iss[0].Code != statedict.CodeParseError {
		t.Fatalf("expected %s, got %v", statedict.CodeParseError, err)
	}
}

func TestFromYAML_NestedSequences(t *testing.T) {
	loaded, err := codec.FromYAML([]byte("steps:\n  - lr: 0.1\n  - lr: 0.2\n"))
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	steps, ok := loaded["steps"].([]any)
	if !ok || len(steps) != 2 {
		t.Fatalf("expected a two element sequence, got %v", loaded)
	}
	if _, ok := steps[0].(statedict.StateDict); !ok {
		t.Fatalf("expected nested state dicts, got %T", steps[0])
	}
}
