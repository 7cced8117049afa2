// Package search provides linear search over integer sequences.
//
// Lookups return a 0-based index, or -1 when the value is absent.
package search

// NotFound is the index returned when a value is absent.
const NotFound = -1

// FindIndex returns the index of the first occurrence of x in s,
// scanning left to right. Returns NotFound if s does not contain x.
func FindIndex(s []int, x int) int {
	for i, v := range s {
		if v == x {
			return i
		}
	}
	return NotFound
}

// FindLastIndex returns the index of the last occurrence of x in s.
// Returns NotFound if s does not contain x.
func FindLastIndex(s []int, x int) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == x {
			return i
		}
	}
	return NotFound
}

// Contains reports whether x is present in s.
func Contains(s []int, x int) bool {
	return FindIndex(s, x) != NotFound
}
