// Package pipeline computes record lengths of FASTA/FASTQ byte streams with
// two goroutines: a reader that fills pooled buffers and a parser that
// rebuilds record boundaries across them.
//
// The parser never decodes bases or qualities; it only counts them. Buffer
// ownership moves through channels, so no locks are involved.
package pipeline
