// Package codec serializes state dicts to wire formats suitable for
// persistence and diffing. Only the state-dict side is covered here;
// checkpoint/file I/O belongs to callers.
package codec

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"

	statedict "github.com/reoring/statedict"
	eng "github.com/reoring/statedict/internal/engine"
)

// Severity expresses how strictly duplicate keys are treated on load.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ToJSON renders a state (a state dict or a leaf) as JSON.
func ToJSON(state any) ([]byte, error) {
	return json.Marshal(state)
}

// ToJSONIndent renders a state as indented JSON, the diff-friendly form.
func ToJSONIndent(state any) ([]byte, error) {
	return json.MarshalIndent(state, "", "  ")
}

// FromJSON loads a state dict from JSON bytes. Numbers are preserved as
// json.Number, and duplicate object keys are rejected: a duplicate would
// silently drop an entry and then fail (or worse, succeed) at decode time.
func FromJSON(data []byte) (statedict.StateDict, error) {
	if iss, err := DetectDuplicateKeys(data, Error, -1); err != nil {
		return nil, err
	} else if len(iss) > 0 {
		return nil, iss
	}
	var sd statedict.StateDict
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&sd); err != nil {
		return nil, statedict.Issues{{
			Path:    "/",
			Code:    statedict.CodeParseError,
			Message: err.Error(),
			Cause:   err,
		}}
	}
	return sd, nil
}

// DetectDuplicateKeys scans JSON bytes for duplicate object keys without
// building the document. The implementation delegates to internal/engine.
// maxIssues < 0 means unlimited; 0 disables collection; >0 sets a limit.
func DetectDuplicateKeys(data []byte, strict Severity, maxIssues int) (statedict.Issues, error) {
	si, err := eng.DetectJSONDuplicateKeysBytes(data, toEngineDup(strict), maxIssues)
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

// DetectDuplicateKeysReader is DetectDuplicateKeys over an io.Reader. The
// reader is consumed fully.
func DetectDuplicateKeysReader(r io.Reader, strict Severity, maxIssues int) (statedict.Issues, error) {
	si, err := eng.DetectJSONDuplicateKeysReader(r, toEngineDup(strict), maxIssues)
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromEngineIssues(si []eng.SimpleIssue) statedict.Issues {
	var iss statedict.Issues
	for _, s := range si {
		iss = statedict.AppendIssues(iss, statedict.Issue{Code: s.Code, Path: s.Path, Message: s.Message})
	}
	return iss
}
