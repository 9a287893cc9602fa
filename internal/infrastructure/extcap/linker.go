package extcap

import (
	"fmt"
	"io"
	"os"

	"github.com/btsnoop/extcapdev/internal/core/domain"
)

// FileSystemLinker performs the actual symlink operations against the real
// filesystem. It is deliberately thin: every method maps to one or two os
// calls, and errors propagate unwrapped enough to keep the underlying
// diagnostic (permission denied, not empty, ...) visible.
type FileSystemLinker struct {
	debug  bool
	errOut io.Writer
}

// NewFileSystemLinker creates a linker. Debug traces go to errOut.
func NewFileSystemLinker(debug bool, errOut io.Writer) *FileSystemLinker {
	return &FileSystemLinker{debug: debug, errOut: errOut}
}

// Inspect classifies the entry at path without following symlinks.
func (l *FileSystemLinker) Inspect(path string) (domain.LinkState, error) {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return domain.LinkState{Kind: domain.KindAbsent}, nil
	}
	if err != nil {
		return domain.LinkState{}, fmt.Errorf("failed to inspect %s: %w", path, err)
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(path)
		if err != nil {
			return domain.LinkState{}, fmt.Errorf("failed to read link %s: %w", path, err)
		}
		state := domain.LinkState{Kind: domain.KindSymlink, Target: target}
		// Stat follows the link; a broken link reports not-exist.
		if _, err := os.Stat(path); err == nil {
			state.TargetExists = true
		}
		return state, nil
	case info.IsDir():
		return domain.LinkState{Kind: domain.KindDir}, nil
	default:
		return domain.LinkState{Kind: domain.KindFile}, nil
	}
}

// Remove deletes the entry at path.
func (l *FileSystemLinker) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	if l.debug {
		fmt.Fprintf(l.errOut, "[DEBUG] removed %s\n", path)
	}
	return nil
}

// CreateLink creates a symlink at linkName storing target verbatim.
func (l *FileSystemLinker) CreateLink(target, linkName string) error {
	if err := os.Symlink(target, linkName); err != nil {
		return fmt.Errorf("failed to create link %s: %w", linkName, err)
	}
	if l.debug {
		fmt.Fprintf(l.errOut, "[DEBUG] linked %s -> %s\n", linkName, target)
	}
	return nil
}

// EnsureParent verifies the directory that will hold the link. By default a
// missing directory is an error: an absent extcap tree usually means
// Wireshark has never run for this user, and silently creating it would
// hide that. With create set, missing directories are built instead.
func (l *FileSystemLinker) EnsureParent(dir string, create bool) error {
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		if !create {
			return fmt.Errorf("parent directory %s does not exist (use --create-dirs to create it)", dir)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		if l.debug {
			fmt.Fprintf(l.errOut, "[DEBUG] created %s\n", dir)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to inspect directory %s: %w", dir, err)
	case !info.IsDir():
		return fmt.Errorf("%s exists but is not a directory", dir)
	case !writable(dir):
		return fmt.Errorf("directory %s is not writable", dir)
	}
	return nil
}
