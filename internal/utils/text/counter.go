// Package text provides rune-aware helpers for user and model text.
package text

// CountRunes counts the Unicode characters (runes) in text, so multi-byte
// characters such as "é" or "☕" count once.
//
//	CountRunes("Onyx")       // 4
//	CountRunes("Café Kreme") // 10
//	CountRunes("")           // 0
func CountRunes(text string) int {
	return len([]rune(text))
}

// Truncate returns at most maxRunes runes of text, never splitting a
// character. It reports whether anything was cut.
func Truncate(text string, maxRunes int) (string, bool) {
	if maxRunes <= 0 {
		return "", text != ""
	}
	count := 0
	for i := range text {
		if count == maxRunes {
			return text[:i], true
		}
		count++
	}
	return text, false
}
