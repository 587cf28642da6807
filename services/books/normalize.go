package books

import (
	"strings"
	"unicode/utf8"
)

// Normalize capitalizes the first letter of every space separated word and lowercases
// the rest. Repeated, leading and trailing spaces are kept as they are.
func Normalize(text string) string {

	words := strings.Split(text, " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}

	return strings.Join(words, " ")
}

func capitalize(word string) string {

	if word == "" {
		return ""
	}

	_, size := utf8.DecodeRuneInString(word)
	return strings.ToUpper(word[:size]) + strings.ToLower(word[size:])
}
