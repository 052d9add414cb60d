package bpwave

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// Delimiters we are willing to accept from the detector. Anything else (e.g.,
// the decimal point, which appears at a fixed rate in numeric tables) falls
// back to a comma.
var permittedDelimiters = map[rune]struct{}{
	',':  {},
	';':  {},
	'\t': {},
	'|':  {},
}

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	for _, v := range delimiters {
		if len(v) == 0 {
			continue
		}

		if _, ok := permittedDelimiters[rune(v[0])]; ok {
			return rune(v[0])
		}
	}

	return ','
}
