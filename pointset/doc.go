// Package pointset reads point files.
//
// A point file holds one point per line as two decimal coordinates separated
// by whitespace:
//
//	# comment
//	12.5 -3
//	0 0
//
// Blank lines and lines starting with '#' are skipped. Point identity is the
// order in which points appear.
package pointset
