// Package contract holds development-time precondition checks for
// filter parameters (sample rates, cutoffs, resonance, prewarped cutoffs).
//
// In default builds every check panics with a descriptive message when its
// precondition does not hold. Building with the release tag replaces every
// check by an empty function that the compiler inlines away, so the checks
// cost nothing on hot paths:
//
//	go build -tags release ./...
//
// The checks catch programmer error. They are never a substitute for
// returning an error from a constructor that validates user input.
package contract
