package cli

import (
	"github.com/spf13/cobra"

	"github.com/btsnoop/extcapdev/internal/core/domain"
	"github.com/btsnoop/extcapdev/internal/infrastructure/extcap"
)

// buildPlan resolves the install plan for one invocation. Precedence per
// value: flag > environment > config file > platform default. The default
// link target is derived from the installer binary's own directory, so it
// is only computed when no override is present.
func buildPlan(cmd *cobra.Command, container *Container, sourceOverride string) (domain.InstallPlan, error) {
	settings, err := container.ConfigRepo.Load()
	if err != nil {
		return domain.InstallPlan{}, err
	}

	name := settings.PluginName
	if v, _ := cmd.Flags().GetString("name"); cmd.Flags().Changed("name") {
		name = v
	}

	extcapDir := settings.ExtcapDir
	if v, _ := cmd.Flags().GetString("extcap-dir"); cmd.Flags().Changed("extcap-dir") {
		extcapDir = v
	}
	if extcapDir == "" {
		extcapDir, err = extcap.DefaultExtcapDir()
		if err != nil {
			return domain.InstallPlan{}, err
		}
	}

	source := settings.Source
	if sourceOverride != "" {
		source = sourceOverride
	}
	binDir := ""
	if source == "" {
		binDir, err = extcap.ExecutableDir()
		if err != nil {
			return domain.InstallPlan{}, err
		}
	}

	return domain.NewInstallPlan(name, binDir, extcapDir, source), nil
}
