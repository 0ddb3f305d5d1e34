// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into opaque verifiers and checks them.
//
// Verifiers are self-describing strings:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// so that a verifier stays checkable after the parameters are tuned.
type PasswordHasher interface {
	// Hash derives a verifier for password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches verifier. A malformed
	// verifier is an error, a wrong password is not.
	Verify(verifier, password string) (bool, error)
}
