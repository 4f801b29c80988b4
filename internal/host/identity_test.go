package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventory/miniapp-storefront/internal/host"
	"github.com/eventory/miniapp-storefront/internal/model"
)

func TestParseIdentityRoundTrip(t *testing.T) {
	id := model.Identity{ID: 123456789, Name: "Demo User", Username: "demo", PhotoURL: "https://img.example/u.png"}

	token, err := host.SignIdentity("s3cret", id)
	require.NoError(t, err)

	got, err := host.ParseIdentity("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParseIdentityWrongSecret(t *testing.T) {
	token, err := host.SignIdentity("s3cret", model.Identity{ID: 1, Name: "x"})
	require.NoError(t, err)

	_, err = host.ParseIdentity("other", token)
	assert.ErrorIs(t, err, host.ErrBadInitData)
}

func TestParseIdentityUnverifiedMode(t *testing.T) {
	// Development hosts sign with an arbitrary key; an empty app secret
	// decodes without verification.
	token, err := host.SignIdentity("whatever", model.Identity{ID: 7, Name: "Dev"})
	require.NoError(t, err)

	got, err := host.ParseIdentity("", token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestParseIdentityEmptyToken(t *testing.T) {
	_, err := host.ParseIdentity("s3cret", "")
	assert.ErrorIs(t, err, host.ErrBadInitData)
}

func TestParseIdentityMissingSubject(t *testing.T) {
	token, err := host.SignIdentity("s3cret", model.Identity{Name: "No ID"})
	require.NoError(t, err)

	_, err = host.ParseIdentity("s3cret", token)
	assert.ErrorIs(t, err, host.ErrBadInitData)
}
