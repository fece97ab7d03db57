// Package sigvec turns amino-acid sequences into rank signals and compares
// them. It is domain-only: no I/O, no logging.
package sigvec
