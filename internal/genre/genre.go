// Package genre holds the constant ID3 genre table shared by the ID3v1,
// ID3v2 TCON and MP4 gnre decoders.
package genre

import "strconv"

// Len is the number of entries in the genre table.
const Len = len(names)

// Name returns the genre at index. ok is false when index is outside the table.
func Name(index int) (name string, ok bool) {
	if index < 0 || index >= len(names) {
		return "", false
	}
	return names[index], true
}

// Numeric reports whether s is a plain decimal number, as written by
// encoders that store a genre index in a text frame ("17"). Numbers too
// large for an int report index -1, which is outside the table.
func Numeric(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1, true
	}
	return n, true
}
