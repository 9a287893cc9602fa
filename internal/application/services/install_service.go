package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btsnoop/extcapdev/internal/core/domain"
	"github.com/btsnoop/extcapdev/internal/core/ports"
)

// InstallService orchestrates the link lifecycle: install, uninstall and
// status. All mutation goes through the injected Linker and all user
// interaction through the Confirmer, so tests drive it against a temp
// directory with canned answers.
type InstallService struct {
	linker    ports.Linker
	confirmer ports.Confirmer
	out       io.Writer
	errOut    io.Writer
}

// NewInstallService creates an install service.
func NewInstallService(linker ports.Linker, confirmer ports.Confirmer, out, errOut io.Writer) *InstallService {
	return &InstallService{
		linker:    linker,
		confirmer: confirmer,
		out:       out,
		errOut:    errOut,
	}
}

// InstallOptions control one install run.
type InstallOptions struct {
	// AssumeYes replaces an existing entry without prompting.
	AssumeYes bool

	// DryRun reports what would happen without mutating anything.
	DryRun bool

	// CreateDirs builds missing parent directories instead of failing.
	CreateDirs bool
}

// Install ensures a symlink exists at plan.Destination storing plan.Source.
// A pre-existing entry of any kind triggers a confirmation prompt; declining
// returns domain.ErrDeclined and leaves the entry untouched. The sequence
// remove-then-link is not transactional: if the remove succeeds and the link
// fails, the destination is left absent.
func (s *InstallService) Install(plan domain.InstallPlan, opts InstallOptions) error {
	if !opts.DryRun {
		if err := s.linker.EnsureParent(filepath.Dir(plan.Destination), opts.CreateDirs); err != nil {
			return err
		}
	}

	state, err := s.linker.Inspect(plan.Destination)
	if err != nil {
		return err
	}

	if state.Kind != domain.KindAbsent {
		fmt.Fprintf(s.errOut, "%s already exists\n", plan.Destination)
		if opts.DryRun {
			fmt.Fprintf(s.out, "would replace %s (%s) with a link to %s\n",
				plan.Destination, state.Kind, plan.Source)
			return nil
		}
		if !opts.AssumeYes {
			ok, err := s.confirmer.Confirm("Overwrite? [y/N] ")
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !ok {
				return domain.ErrDeclined
			}
		}
		if err := s.linker.Remove(plan.Destination); err != nil {
			return err
		}
	} else if opts.DryRun {
		fmt.Fprintf(s.out, "would link %s -> %s\n", plan.Destination, plan.Source)
		return nil
	}

	return s.linker.CreateLink(plan.Source, plan.Destination)
}

// UninstallOptions control one uninstall run.
type UninstallOptions struct {
	// Force removes the destination even when it is not a symlink.
	Force bool

	// DryRun reports what would happen without mutating anything.
	DryRun bool
}

// Uninstall removes the link at plan.Destination and reports whether it
// did. The installer only ever creates symlinks, so anything else at that
// path is not ours and is left alone unless Force is set. An absent
// destination is a successful no-op.
func (s *InstallService) Uninstall(plan domain.InstallPlan, opts UninstallOptions) (bool, error) {
	state, err := s.linker.Inspect(plan.Destination)
	if err != nil {
		return false, err
	}

	switch state.Kind {
	case domain.KindAbsent:
		fmt.Fprintf(s.out, "nothing installed at %s\n", plan.Destination)
		return false, nil
	case domain.KindSymlink:
		// Fall through to removal.
	default:
		if !opts.Force {
			return false, fmt.Errorf("refusing to remove %s: it is a %s, not a symlink (use --force)",
				plan.Destination, state.Kind)
		}
	}

	if opts.DryRun {
		fmt.Fprintf(s.out, "would remove %s\n", plan.Destination)
		return false, nil
	}
	if err := s.linker.Remove(plan.Destination); err != nil {
		return false, err
	}
	return true, nil
}

// Status reports the current state of the destination and of the build
// artifact the plan would link to. It never mutates.
func (s *InstallService) Status(plan domain.InstallPlan) (domain.InstallStatus, error) {
	state, err := s.linker.Inspect(plan.Destination)
	if err != nil {
		return domain.InstallStatus{}, err
	}

	status := domain.InstallStatus{Plan: plan, State: state}
	if _, err := os.Stat(plan.Source); err == nil {
		status.ArtifactExists = true
	}
	return status, nil
}
