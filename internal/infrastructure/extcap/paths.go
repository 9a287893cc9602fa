package extcap

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultExtcapDir returns Wireshark's personal extcap directory for the
// current platform. Wireshark scans this directory for extcap executables
// at startup.
func DefaultExtcapDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA is not set")
		}
		return filepath.Join(appData, "Wireshark", "extcap"), nil
	default:
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".local", "lib", "wireshark", "extcap"), nil
	}
}

// ExecutableDir returns the canonical absolute directory holding the running
// binary, with symlinks in the invocation path resolved. The default link
// target is derived from this, so a symlinked installer still points at the
// build tree it was built in.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return filepath.Dir(resolved), nil
}
