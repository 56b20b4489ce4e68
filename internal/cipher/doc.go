// Package cipher implements two classical text ciphers over the 33-letter
// Russian alphabet: a Gronsfeld-style additive cipher keyed by a word, and a
// columnar route transposition keyed by a column count.
//
// Both engines validate strictly: plaintext is normalized by dropping every
// character outside the alphabet and upper-casing the rest, while cipher
// text must already consist solely of uppercase alphabet letters so that
// corruption is detected instead of silently filtered.
//
// Cipher values are immutable after construction and safe for concurrent
// use.
//
// These are pedagogical, historical schemes. They offer no cryptographic
// security.
package cipher
