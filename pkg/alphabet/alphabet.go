// Package alphabet defines the canonical 33-letter Russian alphabet used by
// the cipher engines.
//
// The alphabet is the ordered sequence АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ.
// Letter Ё sits between Е and Ж, which is also why it needs special handling:
// in Unicode it lives outside the contiguous А..Я range, so neither index
// arithmetic nor the regular lower/upper offset applies to it.
//
// All lookups are pure index arithmetic over the fixed range plus the Ё
// special case; no map is involved.
package alphabet

import "unicode"

// Size is the number of letters in the alphabet.
const Size = 33

// Letters is the alphabet in canonical order.
const Letters = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"

var (
	letters [Size]rune

	// offsets maps r-'А' for r in А..Я to the alphabet index of r.
	// Ё is not covered; yoIndex handles it.
	offsets [1 + 'Я' - 'А']int

	yoIndex int
)

func init() {
	i := 0

	for _, r := range Letters {
		letters[i] = r

		if r == 'Ё' {
			yoIndex = i
		} else {
			offsets[r-'А'] = i
		}

		i++
	}
}

// Index returns the alphabet index of r and whether r is one of the 33
// uppercase letters. Lowercase letters and anything outside the alphabet
// report false; callers fold case first if they want a permissive lookup.
func Index(r rune) (int, bool) {
	if r == 'Ё' {
		return yoIndex, true
	}

	if r >= 'А' && r <= 'Я' {
		return offsets[r-'А'], true
	}

	return 0, false
}

// Contains reports whether r is one of the 33 uppercase letters.
func Contains(r rune) bool {
	_, ok := Index(r)

	return ok
}

// Letter returns the letter at alphabet index i.
// It panics if i is outside [0, Size).
func Letter(i int) rune {
	return letters[i]
}

// ToUpper upper-cases r. Letters а..я are shifted by the regular case
// offset, ё maps to Ё explicitly since it falls outside that range, and any
// other rune goes through the generic unicode.ToUpper.
func ToUpper(r rune) rune {
	if r >= 'а' && r <= 'я' {
		return 'А' + (r - 'а')
	}

	if r == 'ё' {
		return 'Ё'
	}

	return unicode.ToUpper(r)
}
