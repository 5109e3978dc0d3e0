package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	t.Parallel()

	profile, err := ParseProfile(`{"name":" bob ","partner":{"name":"alice","avatar":"x"}}`)
	require.NoError(t, err)
	assert.Equal(t, Profile{Name: "bob", Partner: "alice"}, profile)
	assert.True(t, profile.HasPartner())
}

func TestParseProfileWithoutPartner(t *testing.T) {
	t.Parallel()

	profile, err := ParseProfile(`{"name":"bob"}`)
	require.NoError(t, err)
	assert.False(t, profile.HasPartner())
}

func TestParseProfileRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "{", "[]"} {
		_, err := ParseProfile(raw)
		assert.ErrorIs(t, err, ErrProfileInvalid, raw)
	}
}
