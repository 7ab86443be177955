package memory

import (
	"testing"

	"vaultkeeper/internal/infrastructure/storage"
	"vaultkeeper/internal/infrastructure/storage/storagetest"
)

func TestStorage(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return New()
	})
}
