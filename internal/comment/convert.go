package comment

import "strings"

// Convert rewrites // comments in text into /* */ form. Runs of two or
// more consecutive comment lines collapse into a single block comment
// whose indent is frozen at block entry; an isolated comment becomes an
// inline /* ... */ on its own line; lines without a marker pass through
// with newline normalization only. Any input is accepted, including
// empty text.
func Convert(text string) string {
	lines := splitLines(text)

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	blockMode := false
	indent := 0

	for i, line := range lines {
		det := Detect(line)
		if !blockMode {
			indent = det.Indent
		}
		commentNext := i+1 < len(lines) && Detect(lines[i+1]).HasComment

		if !det.HasComment {
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}

		pad := strings.Repeat(" ", indent)

		if !blockMode && commentNext {
			b.WriteString(pad)
			b.WriteString("/*\n")
			blockMode = true
		}

		if blockMode {
			b.WriteString(pad)
			b.WriteString(" * ")
			b.WriteString(det.Comment)
			b.WriteByte('\n')
			if !commentNext {
				b.WriteString(pad)
				b.WriteString(" */\n")
				blockMode = false
			}
			continue
		}

		// isolated comment, no block neighbors
		b.WriteString(pad)
		if det.Code != "" {
			b.WriteString(det.Code)
			b.WriteByte(' ')
		}
		b.WriteString("/* ")
		b.WriteString(det.Comment)
		b.WriteString(" */\n")
	}

	return b.String()
}

// splitLines normalizes line endings: one entry per line, terminators
// stripped, order preserved. Empty text has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
