// Package stats turns sorted length samples into Nx tables, histograms and
// summary figures. Sort and BuildGapReport sort their input in place; the
// rest never modify it.
package stats
