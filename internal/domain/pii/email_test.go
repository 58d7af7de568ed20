package pii

import (
	"errors"
	"testing"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

func TestNewEmailValid(t *testing.T) {
	e, err := NewEmail("john.doe@canada.ca")
	if err != nil {
		t.Fatalf("NewEmail: %v", err)
	}
	if e.Value != "john.doe@canada.ca" {
		t.Fatalf("value: want=john.doe@canada.ca got=%s", e.Value)
	}
}

func TestNewEmailTrimsWhitespace(t *testing.T) {
	e, err := NewEmail("  user@example.com  ")
	if err != nil {
		t.Fatalf("NewEmail: %v", err)
	}
	if e.Value != "user@example.com" {
		t.Fatalf("value: want=user@example.com got=%s", e.Value)
	}
}

func TestNewEmailInvalid(t *testing.T) {
	for _, raw := range []string{"", "plainstring", "missing@tld", "@no-local.com", "two@@ats.com", "user@.com"} {
		_, err := NewEmail(raw)
		if err == nil {
			t.Fatalf("NewEmail(%q): expected error", raw)
		}
		if !aggregates.IsCode(err, aggregates.CodeValidation) {
			t.Fatalf("NewEmail(%q): expected validation code, got %q", raw, aggregates.CodeOf(err))
		}
		if !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("NewEmail(%q): expected ErrInvalidFormat cause", raw)
		}
	}
}

func TestEmailMask(t *testing.T) {
	e, err := NewEmail("john.doe@canada.ca")
	if err != nil {
		t.Fatalf("NewEmail: %v", err)
	}
	if got := e.Mask(); got != "j***e@c*****a" {
		t.Fatalf("mask: want=j***e@c*****a got=%s", got)
	}
}

func TestEmailMaskNeverEqualsOriginal(t *testing.T) {
	for _, raw := range []string{"john.doe@canada.ca", "ab@cd.ca", "analyst@example.com"} {
		e, err := NewEmail(raw)
		if err != nil {
			t.Fatalf("NewEmail(%q): %v", raw, err)
		}
		if e.Mask() == e.Value {
			t.Fatalf("mask of %q equals original", raw)
		}
	}
}

func TestMaskEmailStringEdgeCases(t *testing.T) {
	// Masking is pure and independent of validation: crafted inputs that
	// would never pass NewEmail still mask safely.
	cases := []struct {
		in   string
		want string
	}{
		{"no-at-sign", "***@***"},
		{"two@at@signs", "***@***"},
		{"", "***@***"},
		{"a@b", "a***@b***"},
		{"a@bc", "a***@b*****c"},
		{"ab@c", "a***b@c***"},
		{"@domain.com", "***@d*****m"},
	}
	for _, tc := range cases {
		if got := MaskEmailString(tc.in); got != tc.want {
			t.Fatalf("MaskEmailString(%q): want=%q got=%q", tc.in, tc.want, got)
		}
	}
}
