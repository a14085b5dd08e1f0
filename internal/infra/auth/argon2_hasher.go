// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

const (
	argon2idPrefix = "$argon2id$"

	// Upper bounds accepted when parsing stored hashes, so a tampered record cannot exhaust memory.
	maxArgon2MemoryKiB  = 1 << 20
	maxArgon2Threads    = 64
	maxArgon2Iterations = 64
)

// Argon2Params are the argon2id cost parameters.
type Argon2Params struct {
	MemoryKiB  uint32
	Iterations uint32
	Threads    uint8
	KeyLength  uint32
	SaltLength uint32
}

// argon2Hasher is a concrete implementation of the PasswordHasher interface using argon2id.
// Hashes with a bcrypt prefix are still verified so older accounts can sign in and be upgraded.
type argon2Hasher struct {
	params Argon2Params
	policy config.PasswordStrengthConfig
	rand   io.Reader
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config) (service.PasswordHasher, error) {
	a := cfg.Auth.Argon2
	params := Argon2Params{
		MemoryKiB:  a.MemoryKiB,
		Iterations: a.Iterations,
		Threads:    a.Threads,
		KeyLength:  a.KeyLength,
		SaltLength: a.SaltLength,
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	var policy config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &argon2Hasher{params: params, policy: policy, rand: rand.Reader}, nil
}

func (p Argon2Params) validate() error {
	switch {
	case p.Iterations < 1:
		return errors.New("argon2 iterations must be at least 1")
	case p.Threads < 1:
		return errors.New("argon2 threads must be at least 1")
	case p.MemoryKiB < 8*uint32(p.Threads):
		return errors.Errorf("argon2 memory must be at least %d KiB for %d threads", 8*uint32(p.Threads), p.Threads)
	case p.KeyLength < 16:
		return errors.New("argon2 key length must be at least 16 bytes")
	case p.SaltLength < 8:
		return errors.New("argon2 salt length must be at least 8 bytes")
	}

	return nil
}

// Hash generates a salted argon2id hash in the PHC string format.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Iterations, h.params.MemoryKiB, h.params.Threads, h.params.KeyLength)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Iterations,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify compares a plaintext password with an encoded hash. Malformed hashes never match.
func (h *argon2Hasher) Verify(password, encoded string) bool {
	if isBcryptHash(encoded) {
		return checkBcrypt(password, encoded)
	}

	params, salt, key, err := decodeArgon2id(encoded)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Iterations, params.MemoryKiB, params.Threads, params.KeyLength)

	return subtle.ConstantTimeCompare(candidate, key) == 1
}

// NeedsRehash reports true for legacy bcrypt hashes and for argon2id hashes made with other parameters.
func (h *argon2Hasher) NeedsRehash(encoded string) bool {
	if isBcryptHash(encoded) {
		return true
	}

	params, salt, _, err := decodeArgon2id(encoded)
	if err != nil {
		return true
	}

	return params.MemoryKiB != h.params.MemoryKiB ||
		params.Iterations != h.params.Iterations ||
		params.Threads != h.params.Threads ||
		params.KeyLength != h.params.KeyLength ||
		uint32(len(salt)) != h.params.SaltLength
}

func decodeArgon2id(encoded string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	if !strings.HasPrefix(encoded, argon2idPrefix) {
		return params, nil, nil, errors.New("not an argon2id hash")
	}

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return params, nil, nil, errors.New("malformed argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, errors.Wrap(err, "malformed argon2id version")
	}
	if version != argon2.Version {
		return params, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.MemoryKiB, &params.Iterations, &params.Threads); err != nil {
		return params, nil, nil, errors.Wrap(err, "malformed argon2id parameters")
	}
	if params.MemoryKiB == 0 || params.MemoryKiB > maxArgon2MemoryKiB ||
		params.Iterations == 0 || params.Iterations > maxArgon2Iterations ||
		params.Threads == 0 || params.Threads > maxArgon2Threads {
		return params, nil, nil, errors.New("argon2id parameters out of range")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, errors.New("malformed argon2id salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, errors.New("malformed argon2id key")
	}

	params.KeyLength = uint32(len(key))
	params.SaltLength = uint32(len(salt))

	return params, salt, key, nil
}
