// Package aggregates defines the shared failure taxonomy for domain
// aggregates.
//
// Validation and precondition failures surface immediately to the caller;
// not-found is an absent result on lookups, never an error. This layer
// performs no I/O, so there is no transient/retry class here.
package aggregates
