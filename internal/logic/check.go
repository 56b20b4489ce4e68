package logic

import (
	"fmt"
	"unicode"

	"github.com/avesov/cipherctl/internal/cipher"
	"github.com/avesov/cipherctl/internal/config"
)

// RunCheck runs a full encrypt/decrypt round trip for every text and prints
// the outcome. With cfg.Corrupt the first cipher letter is lower-cased
// before decryption to demonstrate that corruption is rejected rather than
// silently decoded.
func RunCheck(cfg *config.Config) error {
	engine, err := newCipher(cfg)
	if err != nil {
		return fmt.Errorf("creating cipher: %w", err)
	}

	var failures int

	for _, text := range cfg.Texts {
		if !checkOne(engine, cfg, text) {
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d text(s) failed the round trip", failures)
	}

	return nil
}

// checkOne reports whether the round trip recovered the normalized text.
//
//nolint:forbidigo // printing the report is this command's purpose
func checkOne(engine cipher.Cipher, cfg *config.Config, text string) bool {
	fmt.Printf("Key: %s | Text: %q\n", keyLabel(cfg), text)

	encrypted, err := engine.Encrypt(text)
	if err != nil {
		fmt.Printf("Error: %v\n\n", err)

		return false
	}

	if cfg.Corrupt {
		encrypted = corrupt(encrypted)
	}

	fmt.Printf("Encrypted: %q\n", encrypted)

	decrypted, err := engine.Decrypt(encrypted)
	if err != nil {
		fmt.Printf("Error: %v\n\n", err)

		return false
	}

	fmt.Printf("Decrypted: %q\n", decrypted)

	// Encrypt succeeded above, so the text normalizes cleanly.
	expected, _ := cipher.Normalize(text)

	if decrypted == expected {
		fmt.Print("Ok\n\n")

		return true
	}

	fmt.Print("Err\n\n")

	return false
}

// keyLabel renders the engine's key for the report header.
func keyLabel(cfg *config.Config) string {
	if cfg.Cipher == config.CipherRoute {
		return fmt.Sprintf("%d", cfg.Cols)
	}

	return cfg.Key
}

// corrupt lower-cases the first letter, producing cipher text that must be
// rejected by Decrypt.
func corrupt(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}
