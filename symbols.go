package latex

import "strings"

// specials are characters reserved by LaTeX which are escaped in titles and names.
const specials = "_^#&%${}"

var escaper = newEscaper(specials)

// Escaper transforms text before it is placed into the document.
type Escaper func(string) string

// Escape prefixes characters reserved by LaTeX with a backslash.
func Escape(s string) string {
	return escaper(s)
}

// EscapeChars returns escaper which prefixes given characters with a backslash.
func EscapeChars(chars string) Escaper {
	return newEscaper(chars)
}

// NoEscape keeps the text as is.
func NoEscape(s string) string {
	return s
}

func newEscaper(chars string) Escaper {
	var pairs []string
	for _, char := range chars {
		pairs = append(pairs, string(char), "\\"+string(char))
	}

	replacer := strings.NewReplacer(pairs...)
	return replacer.Replace
}
