// Package pto reads the Hugin project (.pto) files written by
// align_image_stack and turns their control-point lines into overlap
// indicators.
//
// Only control-point records of the form
//
//	c n<int> N<int> x<int> y<int> X<int> Y<int> t<int>
//
// are considered. The indicator for one file is the number of matched records
// divided by the number of distinct t tags among them.
package pto
