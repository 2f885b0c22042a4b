package crypto

import "errors"

// ErrCrypto is returned for every codec failure: missing or short key,
// malformed IV, corrupted ciphertext, wrong key.
var ErrCrypto = errors.New("crypto error")
