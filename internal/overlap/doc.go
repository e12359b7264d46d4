// Package overlap estimates how much a set of frames overlaps by running one
// alignment per parameter set concurrently and summarising every indicator
// they produce.
//
// The statistics are directory-wide: a single mean, median and standard
// deviation over all runs, not a per-image or per-pair score.
package overlap
