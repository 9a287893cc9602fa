package extcap

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExtcapDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix layout only")
	}

	dir, err := DefaultExtcapDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
	assert.True(t, strings.HasSuffix(dir, filepath.Join(".local", "lib", "wireshark", "extcap")))
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}
