// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// MinKeySize is the shortest data key the codec accepts.
	MinKeySize = 16

	// DataKeySize is the size of keys produced by GenerateDataKey.
	DataKeySize = 32

	// IVSize is the size of a derived IV (one AES block).
	IVSize = aes.BlockSize

	subkeySize = 32
	macSize    = sha256.Size
)

var subkeyInfo = []byte("go-note-keeper field codec v1")

// fieldCodec is the private implementation of [FieldCodec].
//
// Format: base64(ct ‖ tag), where ct is AES-256-CBC with PKCS#7 padding
// under the derived IV and tag = HMAC-SHA-256(macKey, iv ‖ ct). The
// encryption and MAC keys are expanded from the data key with HKDF-SHA-256.
type fieldCodec struct{}

// NewFieldCodec constructs a [FieldCodec].
func NewFieldCodec() FieldCodec {
	return &fieldCodec{}
}

// GenerateDataKey reads DataKeySize random bytes from the OS CSPRNG.
func GenerateDataKey() ([]byte, error) {
	key := make([]byte, DataKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCrypto, err)
	}
	return key, nil
}

// DeriveIV implements [FieldCodec]: SHA-256(tag ‖ ":" ‖ noteID)[:16].
func (c *fieldCodec) DeriveIV(noteID string, tag FieldTag) []byte {
	sum := sha256.Sum256([]byte(string(tag) + ":" + noteID))
	iv := make([]byte, IVSize)
	copy(iv, sum[:IVSize])
	return iv
}

// EncryptString implements [FieldCodec].
func (c *fieldCodec) EncryptString(key, iv []byte, plaintext string) (string, error) {
	encKey, macKey, err := subkeys(key)
	if err != nil {
		return "", err
	}
	if len(iv) != IVSize {
		return "", fmt.Errorf("%w: iv must be %d bytes", ErrCrypto, IVSize)
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCrypto, err)
	}

	padded := pad([]byte(plaintext))
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	out := append(ct, tag(macKey, iv, ct)...)
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptString implements [FieldCodec]. The tag is checked in constant time
// before any decryption happens.
func (c *fieldCodec) DecryptString(key, iv []byte, ciphertext string) (string, error) {
	encKey, macKey, err := subkeys(key)
	if err != nil {
		return "", err
	}
	if len(iv) != IVSize {
		return "", fmt.Errorf("%w: iv must be %d bytes", ErrCrypto, IVSize)
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: malformed ciphertext encoding", ErrCrypto)
	}
	if len(raw) < aes.BlockSize+macSize || (len(raw)-macSize)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: malformed ciphertext length", ErrCrypto)
	}

	ct, gotTag := raw[:len(raw)-macSize], raw[len(raw)-macSize:]
	if !hmac.Equal(gotTag, tag(macKey, iv, ct)) {
		return "", fmt.Errorf("%w: authentication failed", ErrCrypto)
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCrypto, err)
	}

	padded := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ct)

	plain, err := unpad(padded)
	if err != nil {
		return "", err
	}

	return string(plain), nil
}

func subkeys(key []byte) (encKey, macKey []byte, err error) {
	if len(key) < MinKeySize {
		return nil, nil, fmt.Errorf("%w: key must be at least %d bytes", ErrCrypto, MinKeySize)
	}

	r := hkdf.New(sha256.New, key, nil, subkeyInfo)
	encKey = make([]byte, subkeySize)
	macKey = make([]byte, subkeySize)
	if _, err := io.ReadFull(r, encKey); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCrypto, err)
	}
	if _, err := io.ReadFull(r, macKey); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCrypto, err)
	}

	return encKey, macKey, nil
}

func tag(macKey, iv, ct []byte) []byte {
	m := hmac.New(sha256.New, macKey)
	m.Write(iv)
	m.Write(ct)
	return m.Sum(nil)
}

func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: bad padding", ErrCrypto)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, fmt.Errorf("%w: bad padding", ErrCrypto)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrCrypto)
		}
	}
	return b[:len(b)-n], nil
}
