// Package libdiff computes, reverses and applies differences between two
// values. Values that are Equal have no diff; otherwise the text forms are
// compared character by character.
package libdiff
