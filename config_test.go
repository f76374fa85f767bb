package tiptapify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("autolink: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Autolink)
	assert.Equal(t, []string{"http", "https"}, cfg.LinkProtocols)
	assert.Equal(t, 300, cfg.MaxGraphemes)
}

func TestParseConfig_ExpandsEnv(t *testing.T) {
	t.Setenv("TIPTAPIFY_MAX", "42")
	cfg, err := ParseConfig([]byte("max_graphemes: ${TIPTAPIFY_MAX}\nlink_protocols: [https]\n"))
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.MaxGraphemes)
	assert.Equal(t, []string{"https"}, cfg.LinkProtocols)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad scheme":   "link_protocols: [\"ht tp\"]\n",
		"empty scheme": "link_protocols: [\"\"]\n",
		"negative max": "max_graphemes: -1\n",
		"bad yaml":     "autolink: [\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiptapify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("autolink: true\nmax_graphemes: 10\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Autolink)
	assert.Equal(t, 10, cfg.MaxGraphemes)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultConfig_Singleton(t *testing.T) {
	assert.Same(t, DefaultConfig(), DefaultConfig())

	// options must not leak into the shared default
	_ = TextToDoc("https://example.com", WithAutolink(true), WithLinkProtocols("https"))
	assert.False(t, DefaultConfig().Autolink)
	assert.Equal(t, []string{"http", "https"}, DefaultConfig().LinkProtocols)
}
