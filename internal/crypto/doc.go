// Package crypto implements the field cipher used for protected user values
// such as government identification numbers and AIMA protocol numbers.
//
// Encryption uses AES-256-GCM with:
//   - 32-byte key derived from the account id via PBKDF2-HMAC-SHA256
//   - fixed application salt "voy-salt-2026", 100,000 iterations
//   - 12-byte random nonce per encryption, no additional data
//
// A protected value is stored as standard padded base64 of nonce || ciphertext || tag.
// The format carries no version or algorithm id and must stay byte-compatible
// with values already written by the mobile client.
//
// Threat model: the key is a deterministic function of the account id, which
// is not a secret. The cipher protects values at rest against casual reads of
// the database by someone who does not know whose row they are looking at. It
// does not protect against anyone who knows the account id and the scheme.
//
// Decryption is fail-soft. [FieldCipher.Decrypt] never fails and renders
// any undecryptable value as [ProtectedPlaceholder]; [FieldCipher.Open]
// reports the cause.
package crypto
