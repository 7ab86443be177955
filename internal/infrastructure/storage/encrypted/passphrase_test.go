package encrypted

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"vaultkeeper/internal/infrastructure/storage/memory"
)

func TestValidatePassphrase(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		wantErr    bool
	}{
		{name: "words with a space", passphrase: "correct horse"},
		{name: "letters and digits", passphrase: "vault2026"},
		{name: "cyrillic with digits", passphrase: "пароль123"},
		{name: "too short", passphrase: "ab1!", wantErr: true},
		{name: "letters only", passphrase: "correcthorse", wantErr: true},
		{name: "digits only", passphrase: "1234567890", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassphrase(tt.passphrase)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeakPassphrase)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew_RejectsWeakPassphraseForNewVault(t *testing.T) {
	_, err := New(context.Background(), memory.New(), "password", testParams)
	assert.ErrorIs(t, err, ErrWeakPassphrase)
}
