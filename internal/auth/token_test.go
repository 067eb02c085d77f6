package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/investor-insight/internal/domain"
)

func TestTokenCodec_IssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("unit-test-secret", time.Hour)

	token, exp, err := codec.Issue("user-1", "admin@x.com", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	// Compact three-part shape: header.payload.signature.
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin@x.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
}

func TestTokenCodec_ExpiredToken(t *testing.T) {
	t.Parallel()

	expired := NewTokenCodec("unit-test-secret", time.Hour)
	expired.ttl = -time.Second

	token, _, err := expired.Issue("user-1", "a@x.com", domain.RoleUser)
	require.NoError(t, err)

	verifier := NewTokenCodec("unit-test-secret", time.Hour)
	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("the-right-secret", time.Hour)
	token, _, err := codec.Issue("user-1", "a@x.com", domain.RoleUser)
	require.NoError(t, err)

	other := NewTokenCodec("a-different-secret", time.Hour)
	_, err = other.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenCodec_SignatureByteFlips(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("unit-test-secret", time.Hour)
	token, _, err := codec.Issue("user-1", "a@x.com", domain.RoleUser)
	require.NoError(t, err)

	lastDot := strings.LastIndex(token, ".")
	require.Greater(t, lastDot, 0)

	// Every single-character corruption of the signature segment must be
	// rejected. 'A' and 'Q' differ in a bit that survives base64 decoding
	// even in the final, partially-used character.
	for i := lastDot + 1; i < len(token); i++ {
		mutated := []byte(token)
		if mutated[i] == 'Q' {
			mutated[i] = 'A'
		} else {
			mutated[i] = 'Q'
		}
		if string(mutated) == token {
			continue
		}
		_, err := codec.Verify(string(mutated))
		assert.Errorf(t, err, "flip at position %d accepted", i)
	}
}

func TestTokenCodec_PayloadTampering(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("unit-test-secret", time.Hour)
	token, _, err := codec.Issue("user-1", "a@x.com", domain.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Swapping the payload for another valid payload invalidates the
	// signature; claims are immutable once signed.
	otherToken, _, err := codec.Issue("user-2", "b@x.com", domain.RoleAdmin)
	require.NoError(t, err)
	otherParts := strings.Split(otherToken, ".")

	forged := parts[0] + "." + otherParts[1] + "." + parts[2]
	_, err = codec.Verify(forged)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenCodec_MalformedInput(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("unit-test-secret", time.Hour)

	cases := map[string]string{
		"empty":            "",
		"one segment":      "garbage",
		"two segments":     "aaa.bbb",
		"four segments":    "a.b.c.d",
		"bad base64":       "!!!.???.***",
		"non-json payload": "eyJhbGciOiJIUzI1NiJ9.bm90anNvbg.sig",
	}

	for name, input := range cases {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := codec.Verify(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}
