package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/btsnoop/extcapdev/internal/application/services"
	"github.com/btsnoop/extcapdev/internal/core/domain"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(container *Container) *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show what is installed in the extcap directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan(cmd, container, "")
			if err != nil {
				return err
			}

			svc := services.NewInstallService(container.Linker, container.Confirmer, container.Out, container.ErrOut)
			status, err := svc.Status(plan)
			if err != nil {
				return err
			}

			renderStatus(container, status)
			return nil
		},
	}

	return statusCmd
}

// renderStatus prints the status report. Reporting only, never mutates.
func renderStatus(container *Container, status domain.InstallStatus) {
	out := container.Out

	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Plugin:"), status.Plan.Name)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Destination:"), status.Plan.Destination)

	switch status.State.Kind {
	case domain.KindAbsent:
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Installed:"), faintStyle.Render("no"))
	case domain.KindSymlink:
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Installed:"), successStyle.Render("yes"))
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Link target:"), status.State.Target)
		if !status.State.TargetExists {
			fmt.Fprintln(out, warnStyle.Render("warning: link is broken (target does not exist)"))
		}
	default:
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Installed:"),
			warnStyle.Render(fmt.Sprintf("no (%s occupies the destination)", status.State.Kind)))
	}

	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Build artifact:"), status.Plan.Source)
	if status.ArtifactExists {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Artifact present:"), successStyle.Render("yes"))
	} else {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Artifact present:"),
			warnStyle.Render("no (build the plugin first)"))
	}
}
