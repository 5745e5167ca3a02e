package comment

import "strings"

// marker introduces a line comment.
const marker = "//"

// Detection is the result of scanning one line for a line comment.
type Detection struct {
	HasComment bool
	Comment    string // text after the marker, left-trimmed
	Code       string // text before the marker, right-trimmed
	Indent     int    // whitespace trimmed from the right end of the pre-marker prefix
}

// Detect splits line at the first occurrence of the line-comment marker.
// Indent counts the trailing whitespace of the code prefix, not the
// line's leading indentation; block emission depends on this exact value.
func Detect(line string) Detection {
	p := strings.Index(line, marker)
	if p < 0 {
		return Detection{}
	}

	prefix := line[:p]
	code := strings.TrimRight(prefix, " \t")

	return Detection{
		HasComment: true,
		Comment:    strings.TrimLeft(line[p+len(marker):], " \t"),
		Code:       code,
		Indent:     len(prefix) - len(code),
	}
}
