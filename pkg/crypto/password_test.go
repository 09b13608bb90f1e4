package crypto

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckSecret(t *testing.T) {
	hash, err := HashSecret("Password123!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, CheckSecret("Password123!", hash))
	assert.False(t, CheckSecret("WrongPass", hash))
}

func TestHashSecret_UniqueSalts(t *testing.T) {
	h1, err := HashSecret("same-secret")
	assert.NoError(t, err)
	h2, err := HashSecret("same-secret")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckSecret("same-secret", h1))
	assert.True(t, CheckSecret("same-secret", h2))
}

func TestCheckSecret_MalformedHash(t *testing.T) {
	assert.False(t, CheckSecret("whatever", ""))
	assert.False(t, CheckSecret("whatever", "not-a-phc-string"))
	assert.False(t, CheckSecret("whatever", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"))
}

func TestHashSecret_RandFailure(t *testing.T) {
	orig := randomRead
	t.Cleanup(func() { randomRead = orig })

	randomRead = func([]byte) (int, error) {
		return 0, errors.New("rand failed")
	}
	_, err := HashSecret("Password123!")
	assert.Error(t, err)
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp, err := GenerateOTP()
		assert.NoError(t, err)
		assert.Len(t, otp, 6)

		n, err := strconv.Atoi(otp)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
