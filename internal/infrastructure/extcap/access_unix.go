//go:build unix

package extcap

import "golang.org/x/sys/unix"

// writable checks for write permission on path for the current user.
func writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
