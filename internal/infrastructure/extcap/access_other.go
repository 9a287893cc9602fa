//go:build !unix

package extcap

// writable is a no-op on platforms without access(2); the subsequent
// filesystem operation reports the real error if the directory is locked.
func writable(path string) bool {
	return true
}
