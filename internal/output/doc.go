// Package output renders statistics reports as fixed-width text tables.
package output
