package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TZ", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, "Asia/Tashkent", cfg.Timezone)
	assert.True(t, cfg.IsDev())
	assert.True(t, cfg.UsesSQLite())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
env: production
site:
  base_url: https://uzbeknews.uz/
telegram:
  bot_token: tok
  channel_id: "@uzbeknews"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	// Trailing slash is normalized away.
	assert.Equal(t, "https://uzbeknews.uz", cfg.Site.BaseURL)
	assert.Equal(t, "@uzbeknews", cfg.Telegram.ChannelID)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\n"), 0o600))

	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_API_KEY", "k-123")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.uz, https://b.uz")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "k-123", cfg.AI.APIKey)
	assert.Equal(t, []string{"https://a.uz", "https://b.uz"}, cfg.AllowedOrigins)
}

func TestUsesSQLite(t *testing.T) {
	sqlite := AppConfig{DSN: "file:uzbek_news.db"}
	assert.True(t, sqlite.UsesSQLite())

	mysql := AppConfig{DSN: "user:pass@tcp(localhost:3306)/news?parseTime=true"}
	assert.False(t, mysql.UsesSQLite())
}

func TestEnums(t *testing.T) {
	assert.True(t, ValidCategory("Sport"))
	assert.False(t, ValidCategory("Astrologiya"))

	assert.True(t, ValidRegion("Xorazm"))
	assert.True(t, ValidRegion(""))
	assert.False(t, ValidRegion("Atlantis"))
}
