package cipher

import (
	"fmt"

	"github.com/avesov/cipherctl/pkg/alphabet"
)

// Cipher is the common surface of both engines.
type Cipher interface {
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}

// normalize converts arbitrary text to alphabet indices: characters outside
// the 33-letter set are dropped, surviving letters are case-folded first.
// Returns ErrEmptyText when nothing survives.
func normalize(text string) ([]int, error) {
	var idx []int

	for _, r := range text {
		if n, ok := alphabet.Index(alphabet.ToUpper(r)); ok {
			idx = append(idx, n)
		}
	}

	if len(idx) == 0 {
		return nil, fmt.Errorf("%w: no letters", ErrEmptyText)
	}

	return idx, nil
}

// Normalize returns the letters-only uppercase form of text, exactly what
// Encrypt operates on. Returns ErrEmptyText when no alphabet letters
// survive.
func Normalize(text string) (string, error) {
	idx, err := normalize(text)
	if err != nil {
		return "", err
	}

	return lettersOf(idx), nil
}

// parseCipherText converts cipher text to alphabet indices. Unlike
// normalize it filters nothing: any character outside the uppercase
// alphabet fails the whole input.
func parseCipherText(text string) ([]int, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty cipher text", ErrEmptyText)
	}

	runes := []rune(text)
	idx := make([]int, len(runes))

	for i, r := range runes {
		n, ok := alphabet.Index(r)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidCipherText, r)
		}

		idx[i] = n
	}

	return idx, nil
}

// lettersOf maps alphabet indices back to a string.
func lettersOf(idx []int) string {
	out := make([]rune, len(idx))

	for i, n := range idx {
		out[i] = alphabet.Letter(n)
	}

	return string(out)
}
