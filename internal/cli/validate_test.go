package cli

import (
	"errors"
	"testing"
)

func TestValidateText(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"plain", "Buy milk", "Buy milk", nil},
		{"trims whitespace", "  Buy milk \t", "Buy milk", nil},
		{"empty", "", "", ErrEmptyText},
		{"whitespace only", "   ", "", ErrEmptyText},
		{"tabs and newlines", "\t\n", "", ErrEmptyText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validateText(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error: got %v want %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("text: got %q want %q", got, tc.want)
			}
		})
	}
}
