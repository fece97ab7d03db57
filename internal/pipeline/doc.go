// Package pipeline fans archive records out to a pool of scoring workers and
// merges their results back into read order.
//
// The only contract to implement is Scorer (Score).
// This keeps the pipeline swappable and testable.
package pipeline
