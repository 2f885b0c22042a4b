package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_codec_mock.go -package=mock

// FieldTag distinguishes the encrypted fields of one note. Each tag yields a
// different IV for the same note identifier.
type FieldTag string

const (
	TitleField FieldTag = "0"
	TextField  FieldTag = "1"
)

// FieldCodec encrypts and decrypts single note fields under a session data
// key. It performs no I/O and holds no state.
//
// The IV of a field is derived from the note identifier and the field tag,
// so no IV column has to be stored. As a consequence equal plaintext in the
// same field of the same note always encrypts to equal ciphertext, also
// across edits. This is an accepted limitation of the scheme.
type FieldCodec interface {
	// DeriveIV returns the 16-byte IV for the given note field. Pure.
	DeriveIV(noteID string, tag FieldTag) []byte

	// EncryptString encrypts plaintext and returns base64 ciphertext.
	// Fails with ErrCrypto when the key or the IV is malformed.
	EncryptString(key, iv []byte, plaintext string) (string, error)

	// DecryptString reverses EncryptString. Fails with ErrCrypto on any
	// format or authentication failure and never returns partial plaintext.
	DecryptString(key, iv []byte, ciphertext string) (string, error)
}
