package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// Cipher protects and reveals single string fields bound to an account id.
type Cipher interface {
	// Encrypt seals plaintext for userID. An empty plaintext yields "".
	Encrypt(ctx context.Context, plaintext, userID string) (string, error)

	// Decrypt reveals a value produced by Encrypt. It never fails: anything
	// that cannot be decrypted with userID is rendered as [ProtectedPlaceholder].
	Decrypt(ctx context.Context, encrypted, userID string) string

	// Open is Decrypt with the failure cause reported.
	Open(ctx context.Context, encrypted, userID string) (string, error)
}
