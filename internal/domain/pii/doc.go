// Package pii holds the value objects that carry personally identifying
// information: Email, PhoneNumber and SIN.
//
// Each value object is built through a validate-on-construct function, so
// an invalid instance is never observable. Masking is a separate pure
// transformation: one-way and lossy, safe for logs and telemetry, and
// usable on any string regardless of whether it would validate.
package pii
