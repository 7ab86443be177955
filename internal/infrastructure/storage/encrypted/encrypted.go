// Package encrypted seals every value written to a store with a key derived
// from a passphrase. Keys are stored in the clear.
package encrypted

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"vaultkeeper/internal/infrastructure/storage"
)

// HeaderKey holds the key-derivation parameters. It is hidden from ListKeys.
const HeaderKey = "_vault_header"

const (
	keyVersion   = 1
	keyAlgorithm = "argon2id"
	saltLength   = 16
)

var (
	ErrWrongPassphrase = errors.New("wrong passphrase")
	ErrDecrypt         = errors.New("cannot decrypt value")
	ErrEmptyPassphrase = errors.New("passphrase is empty")
	ErrWeakPassphrase  = errors.New("passphrase is too weak")
)

// Params tunes argon2id.
type Params struct {
	Time    uint32 `json:"time"`
	Memory  uint32 `json:"memory"`
	Threads uint8  `json:"threads"`
}

var DefaultParams = Params{Time: 1, Memory: 64 * 1024, Threads: 4}

type header struct {
	Version      int       `json:"version"`
	KeyAlgorithm string    `json:"key_algorithm"`
	Salt         string    `json:"salt"`
	Params       Params    `json:"params"`
	KeyHash      string    `json:"key_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type Storage struct {
	storage.Store
	key []byte
}

// New opens an encrypted view of store. The first call on an empty store
// writes a fresh header with params; later calls reuse the stored params and
// fail with ErrWrongPassphrase when the passphrase does not match.
func New(ctx context.Context, store storage.Store, passphrase string, params Params) (*Storage, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	h, found, err := loadHeader(ctx, store)
	if err != nil {
		return nil, err
	}

	if !found {
		if err := ValidatePassphrase(passphrase); err != nil {
			return nil, err
		}
		salt := make([]byte, saltLength)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}
		key := deriveKey(passphrase, salt, params)
		h = header{
			Version:      keyVersion,
			KeyAlgorithm: keyAlgorithm,
			Salt:         hex.EncodeToString(salt),
			Params:       params,
			KeyHash:      keyHash(key),
			CreatedAt:    time.Now().UTC(),
		}
		raw, err := json.Marshal(h)
		if err != nil {
			return nil, fmt.Errorf("encode header: %w", err)
		}
		if err := store.Set(ctx, HeaderKey, string(raw)); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		return &Storage{Store: store, key: key}, nil
	}

	salt, err := hex.DecodeString(h.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	key := deriveKey(passphrase, salt, h.Params)
	if subtle.ConstantTimeCompare([]byte(keyHash(key)), []byte(h.KeyHash)) != 1 {
		return nil, ErrWrongPassphrase
	}
	return &Storage{Store: store, key: key}, nil
}

func loadHeader(ctx context.Context, store storage.Store) (header, bool, error) {
	raw, ok, err := store.Get(ctx, HeaderKey)
	if err != nil {
		return header{}, false, fmt.Errorf("read header: %w", err)
	}
	if !ok {
		return header{}, false, nil
	}
	var h header
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return header{}, false, fmt.Errorf("decode header: %w", err)
	}
	if h.Version != keyVersion || h.KeyAlgorithm != keyAlgorithm {
		return header{}, false, fmt.Errorf("unsupported header %s v%d", h.KeyAlgorithm, h.Version)
	}
	return h, true, nil
}

func deriveKey(passphrase string, salt []byte, p Params) []byte {
	return argon2.IDKey([]byte(passphrase), salt, p.Time, p.Memory, p.Threads, chacha20poly1305.KeySize)
}

func keyHash(key []byte) string {
	sum := sha256.Sum256(key)
	return hex.EncodeToString(sum[:])
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := s.Store.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	plain, err := s.open(key, raw)
	if err != nil {
		return "", false, err
	}
	return plain, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	sealed, err := s.seal(key, value)
	if err != nil {
		return err
	}
	return s.Store.Set(ctx, key, sealed)
}

func (s *Storage) ListKeys(ctx context.Context) ([]string, error) {
	keys, err := s.Store.ListKeys(ctx)
	if err != nil {
		return nil, err
	}
	out := keys[:0]
	for _, k := range keys {
		if k != HeaderKey {
			out = append(out, k)
		}
	}
	return out, nil
}

// seal binds the ciphertext to its key, so a value copied under another key
// fails to open.
func (s *Storage) seal(key, value string) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(value)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(value), []byte(key))
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *Storage) open(key, raw string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrDecrypt, key, err)
	}
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	if len(data) < aead.NonceSize() {
		return "", fmt.Errorf("%w %q: too short", ErrDecrypt, key)
	}
	nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrDecrypt, key, err)
	}
	return string(plain), nil
}
