package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/btsnoop/extcapdev/internal/application/services"
)

// NewUninstallCommand creates the uninstall command.
func NewUninstallCommand(container *Container) *cobra.Command {
	var (
		force  bool
		dryRun bool
	)

	uninstallCmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the plugin link from the extcap directory",
		Long: `Remove the symbolic link from Wireshark's personal extcap directory.

Only symlinks are removed: if the destination holds a regular file or a
directory it was not put there by this tool, and --force is required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan(cmd, container, "")
			if err != nil {
				return err
			}

			svc := services.NewInstallService(container.Linker, container.Confirmer, container.Out, container.ErrOut)
			removed, err := svc.Uninstall(plan, services.UninstallOptions{
				Force:  force,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			if removed {
				fmt.Fprintf(container.Out, "%s %s\n",
					successStyle.Render("✓ removed"), plan.Destination)
			}
			return nil
		},
	}

	uninstallCmd.Flags().BoolVar(&force, "force", false, "Remove the destination even if it is not a symlink")
	uninstallCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be done without doing it")

	return uninstallCmd
}
