package cipher

import (
	"fmt"

	"github.com/avesov/cipherctl/pkg/alphabet"
)

// Gronsfeld is a polyalphabetic additive cipher: each plaintext letter is
// shifted by the alphabet index of the corresponding key letter, with the
// key repeating over the length of the text.
type Gronsfeld struct {
	key []int
}

// NewGronsfeld builds a cipher from a key word. The key must be non-empty
// and consist solely of alphabet letters; lowercase letters are folded to
// uppercase. The key is converted to indices once and never mutated.
func NewGronsfeld(key string) (*Gronsfeld, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	runes := []rune(key)
	idx := make([]int, len(runes))

	for i, r := range runes {
		n, ok := alphabet.Index(alphabet.ToUpper(r))
		if !ok {
			return nil, fmt.Errorf("%w: non-alphabetic character %q", ErrInvalidKey, r)
		}

		idx[i] = n
	}

	return &Gronsfeld{key: idx}, nil
}

// Encrypt normalizes text and shifts each letter forward by the repeating
// key. The output has the length of the normalized text, not the input.
func (g *Gronsfeld) Encrypt(text string) (string, error) {
	idx, err := normalize(text)
	if err != nil {
		return "", err
	}

	out := make([]int, len(idx))
	for i, p := range idx {
		out[i] = (p + g.key[i%len(g.key)]) % alphabet.Size
	}

	return lettersOf(out), nil
}

// Decrypt shifts each letter backward by the repeating key. The input must
// already be clean uppercase alphabet text; anything else is treated as
// corruption and rejected.
func (g *Gronsfeld) Decrypt(text string) (string, error) {
	idx, err := parseCipherText(text)
	if err != nil {
		return "", err
	}

	out := make([]int, len(idx))
	for i, p := range idx {
		out[i] = (p + alphabet.Size - g.key[i%len(g.key)]) % alphabet.Size
	}

	return lettersOf(out), nil
}
