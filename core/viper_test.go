package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile_decorator/global"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestViper_ExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
profile:
  features: [photo, story-sharing]
log:
  dir: /tmp/profile-logs
  level: debug
  max-size: 5
`)

	v, cfg, err := Viper(path)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, []string{"photo", "story-sharing"}, cfg.Profile.Features)
	assert.Equal(t, "/tmp/profile-logs", cfg.Log.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Log.MaxSize)
	assert.Equal(t, 1, cfg.Log.MaxBackups)
}

func TestViper_MissingExplicitFile(t *testing.T) {
	_, _, err := Viper(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestViper_MalformedFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "profile: [unterminated\n")
	_, _, err := Viper(path)
	assert.Error(t, err)
}

func TestViper_DefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, cfg, err := Viper("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Profile.Features)
	assert.Equal(t, "./Log", cfg.Log.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Compress)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "profile:\n  features: [photo]\n")

	v, cfg, err := Viper(path)
	require.NoError(t, err)
	require.Equal(t, []string{"photo"}, cfg.Profile.Features)

	changes := make(chan global.Config, 16)
	Watch(v, func(cfg global.Config) {
		select {
		case changes <- cfg:
		default:
		}
	})

	writeConfig(t, dir, "profile:\n  features: [live, story]\nlog:\n  level: debug\n")

	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-changes:
			if len(got.Profile.Features) == 2 {
				assert.Equal(t, []string{"live", "story"}, got.Profile.Features)
				assert.Equal(t, "debug", got.Log.Level)
				assert.Equal(t, "./Log", got.Log.Dir)
				return
			}
		case <-timeout:
			t.Fatal("config change was not delivered")
		}
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
