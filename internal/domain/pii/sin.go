package pii

import (
	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

// SIN is a Canadian Social Insurance Number in canonical "AAA-BBB-CCC"
// form. Protected B PII: must be masked in all logs and telemetry.
type SIN struct {
	Value string `json:"value"`
}

// NewSIN strips formatting from raw, requires exactly 9 digits and
// validates the CRA positional (Luhn-style) checksum.
func NewSIN(raw string) (SIN, error) {
	digits := digitsOnly(raw)
	if len(digits) != 9 {
		return SIN{}, aggregates.NewError(aggregates.CodeValidation, "pii.new_sin", "SIN must be 9 digits", ErrInvalidFormat)
	}
	if !validSINChecksum(digits) {
		return SIN{}, aggregates.NewError(aggregates.CodeValidation, "pii.new_sin", "invalid SIN checksum", ErrInvalidChecksum)
	}
	return SIN{Value: digits[:3] + "-" + digits[3:6] + "-" + digits[6:]}, nil
}

// Mask returns the SIN masked for logging: 046-454-286 -> ***-***-286.
func (s SIN) Mask() string {
	return "***-***" + lastChars(s.Value, 4)
}

// validSINChecksum implements the CRA digit-doubling checksum: digits at
// even 0-indexed positions count as-is, digits at odd positions are
// doubled and the decimal digits of the result are summed. The total must
// be divisible by 10.
func validSINChecksum(digits string) bool {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if i%2 == 0 {
			sum += d
		} else {
			doubled := d * 2
			sum += doubled/10 + doubled%10
		}
	}
	return sum%10 == 0
}
