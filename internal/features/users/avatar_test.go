package users

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAvatarURL(t *testing.T) {
	raw := NewAvatarURL("Jane Marie Doe")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "https", parsed.Scheme)
	require.Equal(t, "ui-avatars.com", parsed.Host)

	query := parsed.Query()
	require.Equal(t, "JMD", query.Get("name"))
	require.Len(t, query.Get("background"), 6)
	require.Equal(t, "fff", query.Get("color"))
}

func TestNewAvatarURL_EmptyUsername(t *testing.T) {
	raw := NewAvatarURL("   ")
	require.True(t, strings.Contains(raw, "name=%3F"))
}
