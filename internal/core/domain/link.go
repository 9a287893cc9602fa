package domain

import (
	"errors"
	"path/filepath"
)

// ErrDeclined is returned when the user answers the overwrite prompt with
// anything other than "y". It signals a clean, intentional abort.
var ErrDeclined = errors.New("overwrite declined")

// DefaultPluginName is the extcap binary this tool was built for.
const DefaultPluginName = "btsnoop-extcap"

// EntryKind classifies what currently occupies a destination path.
type EntryKind int

const (
	KindAbsent EntryKind = iota
	KindSymlink
	KindFile
	KindDir
)

// String returns a human-readable name for the entry kind.
func (k EntryKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindSymlink:
		return "symlink"
	case KindFile:
		return "regular file"
	case KindDir:
		return "directory"
	default:
		return "unknown"
	}
}

// LinkState is a point-in-time snapshot of the destination path.
type LinkState struct {
	Kind EntryKind

	// Target is the stored link text, set only when Kind is KindSymlink.
	Target string

	// TargetExists reports whether following the link resolves to an
	// existing file. False for broken links and for non-symlink kinds.
	TargetExists bool
}

// InstallPlan describes one link operation: create a symlink at Destination
// whose stored target is Source. All paths are computed once at startup and
// injected, never read from globals.
type InstallPlan struct {
	Name        string
	Source      string
	Destination string
}

// NewInstallPlan builds the plan for linking the plugin name into extcapDir.
// If source is empty, the target defaults to the debug build output next to
// the installer's own directory: <binDir>/../target/debug/<name>.
func NewInstallPlan(name, binDir, extcapDir, source string) InstallPlan {
	if source == "" {
		source = DefaultSource(binDir, name)
	}
	return InstallPlan{
		Name:        name,
		Source:      source,
		Destination: filepath.Join(extcapDir, name),
	}
}

// DefaultSource returns the conventional debug-build path for name, relative
// to the directory holding the installer binary. The parent-directory
// segment is kept literal in the returned string: the link should follow the
// build tree through ".." at access time, so the path must not be cleaned.
func DefaultSource(binDir, name string) string {
	rel := filepath.Join("..", "target", "debug", name)
	if len(binDir) > 0 && binDir[len(binDir)-1] == filepath.Separator {
		return binDir + rel
	}
	return binDir + string(filepath.Separator) + rel
}

// InstallStatus is the non-mutating report produced by the status command.
type InstallStatus struct {
	Plan  InstallPlan
	State LinkState

	// ArtifactExists reports whether the build output the plan would link
	// to is actually present on disk.
	ArtifactExists bool
}
