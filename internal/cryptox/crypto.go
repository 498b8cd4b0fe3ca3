// Package cryptox holds the client-side key derivation and message sealing.
// Keys never leave the client; the server only sees verifiers, ciphertext
// hashes and object locators.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

// ErrSealedMessage is returned for ciphertexts that are truncated, were
// sealed with another passphrase or have been tampered with.
var ErrSealedMessage = errors.New("cannot open sealed message")

func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

func DeriveMasterKey(password []byte, salt []byte) []byte {
	x := argon2.IDKey(password, salt, 1, 64*1024, 4, keySize)
	return x
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// SealMessage encrypts plaintext for the beneficiaries of a switch. The key
// is derived with argon2id from passphrase and a fresh salt. The result is
// laid out as salt || nonce || AES-GCM ciphertext.
func SealMessage(plaintext, passphrase []byte) ([]byte, error) {
	salt := common.GenerateRandByteArray(saltSize)
	key := DeriveMasterKey(passphrase, salt)
	defer common.WipeByteArray(key)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := common.GenerateRandByteArray(aesgcm.NonceSize())

	out := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+aesgcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return aesgcm.Seal(out, nonce, plaintext, nil), nil
}

// OpenMessage reverses SealMessage.
func OpenMessage(sealed, passphrase []byte) ([]byte, error) {
	if len(sealed) < saltSize {
		return nil, ErrSealedMessage
	}
	key := DeriveMasterKey(passphrase, sealed[:saltSize])
	defer common.WipeByteArray(key)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	rest := sealed[saltSize:]
	if len(rest) < aesgcm.NonceSize()+aesgcm.Overhead() {
		return nil, ErrSealedMessage
	}

	plaintext, err := aesgcm.Open(nil, rest[:aesgcm.NonceSize()], rest[aesgcm.NonceSize():], nil)
	if err != nil {
		return nil, ErrSealedMessage
	}
	return plaintext, nil
}

// MessageHash is the content hash recorded on the switch: the lowercase hex
// SHA-256 of the sealed bytes, always 64 characters.
func MessageHash(sealed []byte) string {
	sum := sha256.Sum256(sealed)
	return hex.EncodeToString(sum[:])
}
