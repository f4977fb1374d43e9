package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestYAML(t *testing.T) {
	p := writeFile(t, "geofun.yaml", `
ellipsoid: globe
log:
  level: debug
  dir: /tmp/geofun
output:
  format: json
`)
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "globe", c.Ellipsoid)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "/tmp/geofun", c.Log.Dir)
	assert.Equal(t, "json", c.Output.Format)
	assert.Equal(t, 10, c.Split.Segments)
}

func TestEnvPrecedence(t *testing.T) {
	p := writeFile(t, "geofun.yaml", "output:\n  format: json\nsplit:\n  segments: 4\n")
	env := writeFile(t, ".env", "GEOFUN_FORMAT=msgpack\nGEOFUN_SEGMENTS=6\n")

	c, err := Load(p, env, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "msgpack", c.Output.Format)
	assert.Equal(t, 6, c.Split.Segments)

	t.Setenv("GEOFUN_SEGMENTS", "3")
	c, err = Load(p, env)
	require.NoError(t, err)
	assert.Equal(t, "msgpack", c.Output.Format)
	assert.Equal(t, 3, c.Split.Segments)
}

func TestInvalid(t *testing.T) {
	p := writeFile(t, "bad.yaml", "ellipsoid: mars\nlog:\n  level: loud\noutput:\n  format: xml\nsplit:\n  segments: 0\n")
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ellipsoid")
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "output.format")
	assert.Contains(t, err.Error(), "split.segments")

	p = writeFile(t, "broken.yaml", "log: [")
	_, err = Load(p)
	assert.Error(t, err)

	t.Setenv("GEOFUN_SEGMENTS", "many")
	_, err = Load("")
	assert.Error(t, err)
}
