package session

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
	// keySalt is fixed so the same secret always opens the same sessions.
	keySalt = "quickmart/session-store/v1"
)

var errUnsealable = errors.New("session blob cannot be opened")

// sealer encrypts session blobs with NaCl secretbox.
type sealer struct {
	key [keySize]byte
}

func newSealer(secret string) (*sealer, error) {
	if secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	s := &sealer{}
	copy(s.key[:], argon2.IDKey([]byte(secret), []byte(keySalt), 1, 64*1024, 2, keySize))

	return s, nil
}

// seal returns nonce || box.
func (s *sealer) seal(plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, errors.Wrap(err, "read nonce")
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, &s.key), nil
}

func (s *sealer) open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, errUnsealable
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plaintext, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &s.key)
	if !ok {
		return nil, errUnsealable
	}

	return plaintext, nil
}
