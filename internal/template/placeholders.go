// Package template finds and fills the bracketed placeholders embedded in
// speech bodies, e.g. "Hola [nombre], tu saldo es [monto]".
package template

import "regexp"

// Placeholder names are word characters, spaces and underscores; \p{L}
// keeps accented names like [número] working.
var placeholderPattern = regexp.MustCompile(`\[([\p{L}\p{N}\s_]+)\]`)

// Rendered is a filled-in speech body ready to send to the customer.
type Rendered struct {
	Text      string
	CharCount int
}

// Extract returns the placeholder names in first-occurrence order. A name
// appearing twice is reported twice; each occurrence is filled
// independently.
func Extract(body string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m[1]
	}
	return names
}

// Fill replaces bracketed occurrences left to right: the i-th occurrence
// takes values[i]. Occurrences beyond the supplied values are replaced with
// the empty string; bracket text never reaches the customer.
func Fill(body string, values []string) Rendered {
	i := 0
	text := placeholderPattern.ReplaceAllStringFunc(body, func(string) string {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		i++
		return v
	})
	return Rendered{Text: text, CharCount: len([]rune(text))}
}
