// Package textdir detects the reading direction of literal tooltip text.
package textdir

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/grindlemire/go-tooltip/internal/placement"
)

// Detect returns RTL when the first strongly directional character in s is
// right-to-left (Hebrew, Arabic and similar scripts), and LTR otherwise,
// including for text with no strong characters at all.
func Detect(s string) placement.TextDirection {
	for len(s) > 0 {
		props, size := bidi.LookupString(s)
		if size == 0 {
			break
		}
		switch props.Class() {
		case bidi.L:
			return placement.LTR
		case bidi.R, bidi.AL:
			return placement.RTL
		}
		s = s[size:]
	}
	return placement.LTR
}

// Resolve returns td unchanged unless it is Auto, in which case the
// direction is detected from text.
func Resolve(td placement.TextDirection, text string) placement.TextDirection {
	if td != placement.Auto {
		return td
	}
	return Detect(text)
}
