package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      stderrors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Format(tt.err); result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "nil error",
			err:      nil,
			contains: "",
		},
		{
			name:     "wrapped analysis failure",
			err:      fmt.Errorf("%w: timeout", ErrAnalysisUnavailable),
			contains: "Mood analysis unavailable",
		},
		{
			name:     "storage failure degrades to no data",
			err:      fmt.Errorf("%w: disk full", ErrStorageUnavailable),
			contains: "No data yet.",
		},
		{
			name:     "corrupt data degrades to no data",
			err:      ErrCorruptData,
			contains: "No data yet.",
		},
		{
			name:     "invalid event keeps detail",
			err:      fmt.Errorf("%w: confidence 1.5 outside [0,1]", ErrInvalidEvent),
			contains: "confidence 1.5",
		},
		{
			name:     "unknown error keeps prefix",
			err:      stderrors.New("boom"),
			contains: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserMessage(tt.err)
			if tt.contains == "" && got != "" {
				t.Fatalf("UserMessage(nil) = %q, want empty", got)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("UserMessage(%v) = %q, want it to contain %q", tt.err, got, tt.contains)
			}
		})
	}
}

func TestIsDegradable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: fmt.Errorf("%w: no key", ErrAnalysisUnavailable), want: true},
		{err: ErrStorageUnavailable, want: true},
		{err: fmt.Errorf("load: %w", ErrCorruptData), want: true},
		{err: ErrInvalidEvent, want: false},
		{err: ErrNotFound, want: false},
	}
	for _, tt := range tests {
		if got := IsDegradable(tt.err); got != tt.want {
			t.Errorf("IsDegradable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
