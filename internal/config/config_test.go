package config

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "public.yaml"), []byte(public), 0o644))
	require.NoError(t, os.WriteFile(path.Join(dir, "private.yaml"), []byte(private), 0o644))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t, `
addr: ":9090"
log_level: "debug"
threads_per_page: 5
replies_preview: 2
`, `
mongo:
  uri: "mongodb://example:27017"
  dbname: "boards"
  collection: "threads"
`)

	cfg := MustLoad(dir)

	assert.Equal(t, ":9090", cfg.Public.Addr)
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.Equal(t, 5, cfg.Public.ThreadsPerPage)
	assert.Equal(t, 2, cfg.Public.RepliesPreview)
	assert.Equal(t, "mongodb://example:27017", cfg.Private.Mongo.Uri)
	assert.Equal(t, "boards", cfg.Private.Mongo.Dbname)
}

func TestDefaults(t *testing.T) {
	dir := writeConfigs(t, "", `
mongo:
  uri: "mongodb://localhost:27017"
  dbname: "anonboard"
`)

	cfg := MustLoad(dir)

	assert.Equal(t, ":8080", cfg.Public.Addr)
	assert.Equal(t, 10, cfg.Public.ThreadsPerPage)
	assert.Equal(t, 3, cfg.Public.RepliesPreview)
	assert.Equal(t, "threads", cfg.Private.Mongo.Collection)
}

func TestEnvOverrides(t *testing.T) {
	dir := writeConfigs(t, "", `
mongo:
  uri: "mongodb://localhost:27017"
  dbname: "anonboard"
`)
	t.Setenv("DB_URL", "mongodb://override:27017")
	t.Setenv("PORT", "3000")

	cfg := MustLoad(dir)

	assert.Equal(t, "mongodb://override:27017", cfg.Private.Mongo.Uri)
	assert.Equal(t, ":3000", cfg.Public.Addr)
}

func TestMissingFilePanics(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}
