package models

import (
	"errors"
	"testing"
)

func TestTranslationResult(t *testing.T) {
	tests := []struct {
		name    string
		result  TranslationResult
		wantOK  bool
		display string
	}{
		{
			name:    "success",
			result:  Success("Hello world"),
			wantOK:  true,
			display: "Hello world",
		},
		{
			name:    "success containing the word Error",
			result:  Success("Error handling is important"),
			wantOK:  true,
			display: "Error handling is important",
		},
		{
			name:    "failure",
			result:  Failure(errors.New("connection refused")),
			wantOK:  false,
			display: "Error: connection refused",
		},
		{
			name:    "failure with nil error",
			result:  Failure(nil),
			wantOK:  false,
			display: "Error: unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.OK(); got != tt.wantOK {
				t.Errorf("OK() = %v, want %v", got, tt.wantOK)
			}
			if got := tt.result.Display(); got != tt.display {
				t.Errorf("Display() = %q, want %q", got, tt.display)
			}
		})
	}
}
