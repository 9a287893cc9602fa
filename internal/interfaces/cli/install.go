package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/btsnoop/extcapdev/internal/application/services"
)

// NewInstallCommand creates the install command.
func NewInstallCommand(container *Container) *cobra.Command {
	var (
		assumeYes  bool
		dryRun     bool
		createDirs bool
		source     string
	)

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Link the plugin's debug build into the extcap directory",
		Long: `Create a symbolic link in Wireshark's personal extcap directory pointing
at the plugin's debug build output (../target/debug/<name>, relative to this
binary's directory, unless overridden).

If something already occupies the destination you are asked before it is
replaced; declining leaves it untouched and exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan(cmd, container, source)
			if err != nil {
				return err
			}

			svc := services.NewInstallService(container.Linker, container.Confirmer, container.Out, container.ErrOut)
			if err := svc.Install(plan, services.InstallOptions{
				AssumeYes:  assumeYes,
				DryRun:     dryRun,
				CreateDirs: createDirs,
			}); err != nil {
				return err
			}

			if !dryRun {
				fmt.Fprintf(container.Out, "%s %s -> %s\n",
					successStyle.Render("✓ linked"), plan.Destination, plan.Source)
			}
			return nil
		},
	}

	installCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Replace an existing entry without prompting")
	installCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be done without doing it")
	installCmd.Flags().BoolVar(&createDirs, "create-dirs", false, "Create missing parent directories")
	installCmd.Flags().StringVar(&source, "source", "", "Link target (default <bindir>/../target/debug/<name>)")

	return installCmd
}
