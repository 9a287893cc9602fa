package extcap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btsnoop/extcapdev/internal/core/domain"
)

func newTestLinker() *FileSystemLinker {
	return NewFileSystemLinker(false, &bytes.Buffer{})
}

func TestFileSystemLinker_Inspect(t *testing.T) {
	linker := newTestLinker()
	dir := t.TempDir()

	t.Run("Absent", func(t *testing.T) {
		state, err := linker.Inspect(filepath.Join(dir, "missing"))
		require.NoError(t, err)
		assert.Equal(t, domain.KindAbsent, state.Kind)
	})

	t.Run("RegularFile", func(t *testing.T) {
		path := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		state, err := linker.Inspect(path)
		require.NoError(t, err)
		assert.Equal(t, domain.KindFile, state.Kind)
	})

	t.Run("Directory", func(t *testing.T) {
		path := filepath.Join(dir, "subdir")
		require.NoError(t, os.Mkdir(path, 0755))

		state, err := linker.Inspect(path)
		require.NoError(t, err)
		assert.Equal(t, domain.KindDir, state.Kind)
	})

	t.Run("HealthySymlink", func(t *testing.T) {
		target := filepath.Join(dir, "target-file")
		require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
		link := filepath.Join(dir, "good-link")
		require.NoError(t, os.Symlink(target, link))

		state, err := linker.Inspect(link)
		require.NoError(t, err)
		assert.Equal(t, domain.KindSymlink, state.Kind)
		assert.Equal(t, target, state.Target)
		assert.True(t, state.TargetExists)
	})

	t.Run("BrokenSymlink", func(t *testing.T) {
		link := filepath.Join(dir, "broken-link")
		require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), link))

		state, err := linker.Inspect(link)
		require.NoError(t, err)
		assert.Equal(t, domain.KindSymlink, state.Kind)
		assert.False(t, state.TargetExists)
	})
}

func TestFileSystemLinker_CreateLink_StoresTargetVerbatim(t *testing.T) {
	linker := newTestLinker()
	dir := t.TempDir()

	target := dir + string(filepath.Separator) + filepath.Join("..", "target", "debug", "btsnoop-extcap")
	link := filepath.Join(dir, "btsnoop-extcap")
	require.NoError(t, linker.CreateLink(target, link))

	stored, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, stored, "link text must keep the unresolved parent segment")
}

func TestFileSystemLinker_Remove(t *testing.T) {
	linker := newTestLinker()
	dir := t.TempDir()

	t.Run("RemovesEntry", func(t *testing.T) {
		path := filepath.Join(dir, "doomed")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		require.NoError(t, linker.Remove(path))
		_, err := os.Lstat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("NonEmptyDirectoryFails", func(t *testing.T) {
		path := filepath.Join(dir, "occupied")
		require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0755))

		assert.Error(t, linker.Remove(path))
	})
}

func TestFileSystemLinker_EnsureParent(t *testing.T) {
	linker := newTestLinker()

	t.Run("ExistingDirectory", func(t *testing.T) {
		assert.NoError(t, linker.EnsureParent(t.TempDir(), false))
	})

	t.Run("MissingWithoutCreateFails", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "wireshark", "extcap")

		err := linker.EnsureParent(missing, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("MissingWithCreateBuildsTree", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "wireshark", "extcap")

		require.NoError(t, linker.EnsureParent(missing, true))
		info, err := os.Stat(missing)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("FileInTheWayFails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		err := linker.EnsureParent(path, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}
