package encrypted

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const MinPassphraseLen = 8

// ValidatePassphrase is applied when a vault is created; unlocking an
// existing vault only checks that the passphrase matches.
func ValidatePassphrase(passphrase string) error {
	if utf8.RuneCountInString(passphrase) < MinPassphraseLen {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakPassphrase, MinPassphraseLen)
	}

	var hasLetter, hasDigit, hasOther bool
	for _, r := range passphrase {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
	}

	classes := 0
	for _, ok := range []bool{hasLetter, hasDigit, hasOther} {
		if ok {
			classes++
		}
	}
	if classes < 2 {
		return fmt.Errorf("%w: mix letters with digits, spaces or symbols", ErrWeakPassphrase)
	}
	return nil
}
