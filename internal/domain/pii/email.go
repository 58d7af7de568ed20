package pii

import (
	"regexp"
	"strings"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email is a syntactically validated email address.
type Email struct {
	Value string `json:"value"`
}

// NewEmail validates and wraps an email address.
func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	if !emailPattern.MatchString(v) {
		return Email{}, aggregates.NewError(aggregates.CodeValidation, "pii.new_email", "invalid email address", ErrInvalidFormat)
	}
	return Email{Value: v}, nil
}

// Mask returns the address masked for logging:
// john.doe@canada.ca -> j***e@c*****a.
func (e Email) Mask() string {
	return MaskEmailString(e.Value)
}

// MaskEmailString applies the email masking rule to a raw string. It is
// exposed separately because entities store emails as plain strings.
func MaskEmailString(s string) string {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "***@***"
	}
	local, domain := parts[0], parts[1]

	maskedLocal := local + "***"
	if len(local) > 1 {
		maskedLocal = local[:1] + "***" + local[len(local)-1:]
	}

	maskedDomain := domain + "***"
	if len(domain) > 1 {
		maskedDomain = domain[:1] + "*****" + domain[len(domain)-1:]
	}

	return maskedLocal + "@" + maskedDomain
}
