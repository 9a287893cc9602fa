package ports

import (
	"github.com/btsnoop/extcapdev/internal/core/domain"
)

// Confirmer asks the user a yes/no question. Implementations decide what
// counts as an affirmative answer; the production implementation accepts
// only the exact line "y".
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Linker abstracts the symlink operations the installer performs, so the
// service layer can be tested against a temporary directory.
type Linker interface {
	// Inspect classifies whatever occupies path, without following it.
	// A missing entry is reported as KindAbsent, not as an error.
	Inspect(path string) (domain.LinkState, error)

	// Remove deletes the entry at path. Removing a non-empty directory
	// fails, which is the desired behavior: the installer never recurses.
	Remove(path string) error

	// CreateLink creates a symlink at linkName whose stored target is
	// target, verbatim. The target is not resolved or cleaned.
	CreateLink(target, linkName string) error

	// EnsureParent checks that the directory meant to hold the link
	// exists and is writable. With create set it builds missing
	// directories instead of failing.
	EnsureParent(dir string, create bool) error
}
