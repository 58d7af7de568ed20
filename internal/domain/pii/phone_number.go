package pii

import (
	"strings"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

// PhoneNumber is a 10-digit Canadian phone number in canonical
// "(AAA) BBB-CCCC" form.
type PhoneNumber struct {
	Value string `json:"value"`
}

// NewPhoneNumber strips formatting from raw and canonicalizes it.
// Anything other than exactly 10 digits is rejected.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	digits := digitsOnly(raw)
	if len(digits) != 10 {
		return PhoneNumber{}, aggregates.NewError(aggregates.CodeValidation, "pii.new_phone_number", "phone number must be 10 digits", ErrInvalidFormat)
	}
	return PhoneNumber{Value: "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]}, nil
}

// Mask returns the number masked for logging:
// (613) 555-1234 -> (***) ***-1234.
func (p PhoneNumber) Mask() string {
	return "(***) ***" + lastChars(p.Value, 5)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// lastChars returns the trailing n bytes of s, or all of s when shorter.
func lastChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
