package statedict

// Package statedict provides:
//
// - Type-directed conversion between structured targets and nested state dicts (Encode/Decode)
// - An open registry mapping type tags to converter pairs (Register/Lookup)
// - Built-in converters for sequences, mappings, fixed-field records, and partial applications
// - A stable error model via Issues (path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place wire codecs for persisted state dicts under codec/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  state, err := statedict.Encode(ctx, target)
//  restored, err := statedict.Decode(ctx, target, state)
//
//  data, err := codec.ToJSON(state)
//  state2, err := codec.FromJSON(data)
//
// Unregistered types pass through unchanged in both directions; they are the
// leaves of the tree (numeric arrays, scalars, opaque handles). Decode treats
// the live target as the structural template, so persisted state can never
// silently reshape a target.
