// Package bench measures the sorting algorithms over generated inputs and
// renders the averages as fixed-width tables.
//
// A Config describes the plan (sizes, distributions, runs per cell, element
// types). A Runner produces a Table for one algorithm (rows are sizes,
// columns are distributions) or one Table per size comparing algorithms
// (rows are algorithms). Every cell is the mean wall-clock time of Runs
// sorts, each on freshly generated data.
package bench
