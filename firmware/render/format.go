// Package render draws the dynamic screen fields, touching the panel only when
// a field's value changed since it was last drawn.
package render

import "strconv"

// FormatFixed renders v three cells wide: values from 100 up are unpadded,
// [10,100) get one leading space and [0,10) get two. Negatives in (-10,0) get
// one leading space; -10 and below are unpadded.
func FormatFixed(v int) string {
	s := strconv.Itoa(v)
	switch {
	case v >= 100:
		return s
	case v >= 10:
		return " " + s
	case v >= 0:
		return "  " + s
	case v > -10:
		return " " + s
	default:
		return s
	}
}

// FormatTwoDigits renders v in [0,99] zero padded to two cells.
func FormatTwoDigits(v int) string {
	if v < 0 {
		v = 0
	}
	v %= 100
	return string([]byte{byte('0' + v/10), byte('0' + v%10)})
}
