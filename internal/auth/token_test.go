package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/bloglist/domain"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(domain.User{ID: "42", Username: "root"})
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "root", claims.Username)
}

func TestParseRejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue(domain.User{ID: "42", Username: "root"})
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("not.a.token")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("other secret", func(t *testing.T) {
		_, err := NewTokenIssuer("another", time.Hour).Parse(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		late := NewTokenIssuer("secret", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Parse(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("missing user id", func(t *testing.T) {
		anon, err := issuer.Issue(domain.User{Username: "ghost"})
		require.NoError(t, err)
		_, err = issuer.Parse(anon)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestNoExpiry(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)
	token, err := issuer.Issue(domain.User{ID: "1", Username: "u"})
	require.NoError(t, err)

	issuer.now = func() time.Time { return time.Now().AddDate(10, 0, 0) }
	_, err = issuer.Parse(token)
	assert.NoError(t, err)
}
