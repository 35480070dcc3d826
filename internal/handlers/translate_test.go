package handlers

import (
	"errors"
	"testing"

	"github.com/iahmedraza4/translation-agent/internal/models"
	"github.com/iahmedraza4/translation-agent/utils"
)

func TestValidationMessage(t *testing.T) {
	type langRequest struct {
		Lang string `validate:"required,len=2"`
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing text becomes the empty-input warning",
			err:  utils.Validate.Struct(models.TranslateRequest{}),
			want: EmptyInputWarning,
		},
		{
			name: "other rules are named",
			err:  utils.Validate.Struct(langRequest{Lang: "eng"}),
			want: "Lang failed on the 'len' rule",
		},
		{
			name: "non-validation error passes through",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected a validation error to map")
			}
			if got := validationMessage(tt.err); got != tt.want {
				t.Errorf("validationMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
