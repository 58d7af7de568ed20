package pii

import (
	"errors"
	"testing"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

func TestNewPhoneNumberCanonicalizes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"6135551234", "(613) 555-1234"},
		{"(613) 555-1234", "(613) 555-1234"},
		{"613-555-1234", "(613) 555-1234"},
		{"613.555.1234", "(613) 555-1234"},
		{" 613 555 1234 ", "(613) 555-1234"},
	}
	for _, tc := range cases {
		p, err := NewPhoneNumber(tc.in)
		if err != nil {
			t.Fatalf("NewPhoneNumber(%q): %v", tc.in, err)
		}
		if p.Value != tc.want {
			t.Fatalf("NewPhoneNumber(%q): want=%q got=%q", tc.in, tc.want, p.Value)
		}
	}
}

func TestNewPhoneNumberRoundTrip(t *testing.T) {
	a, err := NewPhoneNumber("(613) 555-1234")
	if err != nil {
		t.Fatalf("canonical input: %v", err)
	}
	b, err := NewPhoneNumber("6135551234")
	if err != nil {
		t.Fatalf("digit input: %v", err)
	}
	if a.Value != b.Value {
		t.Fatalf("round trip: %q != %q", a.Value, b.Value)
	}
}

func TestNewPhoneNumberRejectsWrongDigitCount(t *testing.T) {
	for _, raw := range []string{"", "613555123", "61355512345", "abc", "1-613-555-1234"} {
		_, err := NewPhoneNumber(raw)
		if err == nil {
			t.Fatalf("NewPhoneNumber(%q): expected error", raw)
		}
		if !aggregates.IsCode(err, aggregates.CodeValidation) {
			t.Fatalf("NewPhoneNumber(%q): expected validation code, got %q", raw, aggregates.CodeOf(err))
		}
		if !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("NewPhoneNumber(%q): expected ErrInvalidFormat cause", raw)
		}
	}
}

func TestPhoneNumberMask(t *testing.T) {
	p, err := NewPhoneNumber("6135551234")
	if err != nil {
		t.Fatalf("NewPhoneNumber: %v", err)
	}
	if got := p.Mask(); got != "(***) ***-1234" {
		t.Fatalf("mask: want=(***) ***-1234 got=%s", got)
	}
	if p.Mask() == p.Value {
		t.Fatalf("mask equals original")
	}
}

func TestPhoneNumberMaskForcedShortValue(t *testing.T) {
	// Masking stays total even for force-constructed values that never
	// went through validation.
	p := PhoneNumber{Value: "1234"}
	if got := p.Mask(); got != "(***) ***1234" {
		t.Fatalf("mask: want=(***) ***1234 got=%s", got)
	}
}
