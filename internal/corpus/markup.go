package corpus

// StripMarkup removes XML tags from source and returns the plain text together
// with, for every rune of the plain text, the index of that rune in source.
// Offsets count runes on both sides. Entity references are kept verbatim so
// offsets stay aligned with annotations made against the raw files.
func StripMarkup(source string) (string, []int) {
	runes := []rune(source)
	text := make([]rune, 0, len(runes))
	offsets := make([]int, 0, len(runes))
	inTag := false
	for i, r := range runes {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
		default:
			text = append(text, r)
			offsets = append(offsets, i)
		}
	}
	return string(text), offsets
}
