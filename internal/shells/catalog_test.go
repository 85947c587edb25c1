package shells

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScansDirAndExtras(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "warmup.sh"), []byte("echo hi\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.sh"), 0o755))

	c, err := Load(dir, map[string]string{
		"reset":  "/srv/reset.sh",
		"warmup": "/srv/warmup-v2.sh",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"reset", "warmup"}, c.Names())

	p, err := c.Lookup("warmup")
	require.NoError(t, err)
	assert.Equal(t, "/srv/warmup-v2.sh", p)
}

func TestLoadMissingDir(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent"), nil)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Catalog{}.Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownShell)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestRemotePath(t *testing.T) {
	assert.Equal(t, "/data/local/tmp/adbatch_warmup.sh", RemotePath("warmup"))
}

func TestRemotePathReplacesShellMetacharacters(t *testing.T) {
	assert.Equal(t, "/data/local/tmp/adbatch_clear_cache.sh", RemotePath("clear cache"))
	assert.Equal(t, "/data/local/tmp/adbatch_a_b__rm_-rf_.sh", RemotePath("a;b/$rm -rf*"))
	assert.Equal(t, "/data/local/tmp/adbatch_v1.2_x-y.sh", RemotePath("v1.2_x-y"))
}
