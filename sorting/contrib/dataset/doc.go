// Package dataset generates integer inputs for sorting benchmarks and tests.
//
// Inputs follow one of five named distributions: uniformly random, ascending,
// descending, nearly sorted (ascending with a fraction of random pair swaps)
// and few unique (drawn from a small pool of values).
package dataset
