package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters used for every stored secret (passwords and PINs).
const (
	memoryKB    uint32 = 64 * 1024
	timeCost    uint32 = 1
	parallelism uint8  = 4
	saltLength         = 16
	keyLength   uint32 = 32
)

var randomRead = rand.Read

// HashSecret hashes a password or PIN with argon2id and returns a PHC-encoded string.
func HashSecret(secret string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := randomRead(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(secret), salt, timeCost, memoryKB, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memoryKB,
		timeCost,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// CheckSecret compares a plaintext secret with a PHC-encoded argon2id hash.
func CheckSecret(secret, encodedHash string) bool {
	salt, hash, params, err := decodeHash(encodedHash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(secret), salt, params.time, params.memory, params.parallelism, uint32(len(hash)))
	return subtle.ConstantTimeCompare(computed, hash) == 1
}

type hashParams struct {
	memory      uint32
	time        uint32
	parallelism uint8
}

func decodeHash(encodedHash string) ([]byte, []byte, *hashParams, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, nil, errors.New("invalid hash format")
	}

	version, err := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if err != nil || version != argon2.Version {
		return nil, nil, nil, errors.New("unsupported argon2 version")
	}

	params := &hashParams{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.parallelism); err != nil {
		return nil, nil, nil, errors.New("invalid hash parameters")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, errors.New("invalid salt encoding")
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(hash) == 0 {
		return nil, nil, nil, errors.New("invalid hash encoding")
	}

	return salt, hash, params, nil
}
