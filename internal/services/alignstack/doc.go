// Package alignstack mediates access to Hugin's align_image_stack CLI.
//
// It builds the command line for one parameter set, runs the tool through an
// injectable Executor, and hands the resulting .pto artifact to the pto
// package. Every failure (launch error, non-zero exit, timeout, unreadable
// artifact) is logged and reported as an empty indicator list so one bad run
// never aborts a directory scan.
package alignstack
