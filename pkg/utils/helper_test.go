package utils

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("longpw123")
	require.NoError(t, err)

	assert.NotEqual(t, "longpw123", hash)
	assert.True(t, CheckPasswordHash("longpw123", hash))
	assert.False(t, CheckPasswordHash("longpw124", hash))
}

func TestSessionUserCan(t *testing.T) {
	user := SessionUser{Permissions: []string{"requests:read"}}
	assert.True(t, user.Can("requests:read"))
	assert.False(t, user.Can("users:write"))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"DB_NAME=portal\nJWT_SECRET=0123456789abcdef0123456789abcdef\nCORS_ALLOWED_ORIGINS=http://a.test,http://b.test\nPORT=9000\n",
	), 0o600))

	t.Setenv("PORT", "9100")

	config, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "portal", config.Database.Name)
	assert.Equal(t, "9100", config.App.Port, "environment wins over file")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.App.AllowedOrigins)
	assert.Equal(t, 24, config.JWT.ExpiryHours)
	assert.Equal(t, 587, config.Email.Port)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("DB_NAME", "from-env")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", config.Database.Name)
}

func TestParseTrustedProxies(t *testing.T) {
	prefixes, err := ParseTrustedProxies([]string{"10.0.0.0/8", "192.168.1.5", "fd00::/8"})
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.168.1.5/32"),
		netip.MustParsePrefix("fd00::/8"),
	}, prefixes)

	_, err = ParseTrustedProxies([]string{"proxy.internal"})
	assert.Error(t, err)
}

func TestLoadConfig_RejectsBadTrustedProxy(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,not-an-ip")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	assert.ErrorContains(t, err, "not-an-ip")
}

func TestConfigValidate(t *testing.T) {
	config := &Config{
		Database: DatabaseConfig{Name: "portal"},
		JWT:      JWTConfig{Secret: "short", ExpiryHours: 1},
	}
	assert.Error(t, config.Validate())

	config.JWT.Secret = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, config.Validate())

	config.Database.Name = ""
	assert.Error(t, config.Validate())
}
