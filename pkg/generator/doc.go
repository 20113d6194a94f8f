// Package generator synthesizes records with normally distributed scores.
//
// A single draw can fail in two ways: a simulated transient error injected with a fixed
// probability, or a score outside the accepted range. Fill retries the same identifier with
// a fresh draw until it succeeds, so identifiers are always the gapless sequence 1..n.
package generator
