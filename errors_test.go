package statedict_test

import (
	"strings"
	"testing"

	statedict "github.com/reoring/statedict"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := statedict.Issues{
		{Path: "./a", Code: statedict.CodeLengthMismatch, Message: "got 3 and 2"},
		{Path: "./b", Code: statedict.CodeMissingKey},
		{Path: "./c", Code: statedict.CodeFieldMismatch},
		{Path: "./d", Code: statedict.CodeInvalidType},
	}
	s := iss.Error()
	if !strings.Contains(s, "length_mismatch at ./a: got 3 and 2") {
		t.Fatalf("expected code, path and message in summary, got %q", s)
	}
	if !strings.Contains(s, "(total 4)") {
		t.Fatalf("expected truncation note, got %q", s)
	}
}

func TestIssues_EmptyError(t *testing.T) {
	if s := (statedict.Issues{}).Error(); s != "" {
		t.Fatalf("expected empty summary, got %q", s)
	}
}

func TestAppendIssues_InitializesDestination(t *testing.T) {
	iss := statedict.AppendIssues(nil, statedict.Issue{Code: statedict.CodeMissingKey})
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %d", len(iss))
	}
}

func TestAsIssues_NonIssuesError(t *testing.T) {
	if _, ok := statedict.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
}
