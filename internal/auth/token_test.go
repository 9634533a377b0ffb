package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweeter/internal/tweeter"
)

var testSecret = []byte("test-signing-secret")

func TestTokens_IssueVerify(t *testing.T) {
	tokens := NewTokens(testSecret)

	token, err := tokens.Issue(42)
	require.NoError(t, err)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokens_Malformed(t *testing.T) {
	tokens := NewTokens(testSecret)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tokens.Verify(token)
		assert.ErrorIs(t, err, tweeter.ErrUnauthenticated)
	}
}

func TestTokens_WrongSecret(t *testing.T) {
	token, err := NewTokens([]byte("other-secret")).Issue(7)
	require.NoError(t, err)

	_, err = NewTokens(testSecret).Verify(token)
	assert.ErrorIs(t, err, tweeter.ErrUnauthenticated)
}

func TestTokens_Expired(t *testing.T) {
	issuer := NewTokens(testSecret)
	issuer.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }

	// Signature is valid, the token is simply past its expiry
	token, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = NewTokens(testSecret).Verify(token)
	assert.ErrorIs(t, err, tweeter.ErrUnauthenticated)
}
