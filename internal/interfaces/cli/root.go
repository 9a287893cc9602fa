package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/btsnoop/extcapdev/internal/core/domain"
	"github.com/btsnoop/extcapdev/internal/core/ports"
	"github.com/btsnoop/extcapdev/internal/infrastructure/config"
	"github.com/btsnoop/extcapdev/internal/infrastructure/extcap"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// Container holds the dependencies for CLI commands.
type Container struct {
	ConfigRepo *config.Repository
	Linker     ports.Linker
	Confirmer  ports.Confirmer
	Out        io.Writer
	ErrOut     io.Writer
	Debug      bool
}

// NewContainer wires the production dependencies: real filesystem, real
// stdin, real config locations.
func NewContainer() (*Container, error) {
	return &Container{
		ConfigRepo: config.NewRepository(""),
		Linker:     extcap.NewFileSystemLinker(false, os.Stderr),
		Confirmer:  NewStdinConfirmer(os.Stdin, os.Stderr),
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
	}, nil
}

// NewRootCommand represents the base command when called without any
// subcommands.
func NewRootCommand(container *Container) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "extcapdev",
		Short: "Link locally built extcap plugins into Wireshark",
		Long: `extcapdev maintains a symbolic link from Wireshark's personal extcap
directory to a locally built extcap plugin binary, so Wireshark always picks
up the latest build without copying.

It was written for the btsnoop-extcap plugin but links any extcap binary.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path, _ := cmd.Flags().GetString("config"); cmd.Flags().Changed("config") {
				container.ConfigRepo = config.NewRepository(path)
			}
			if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
				container.Debug = true
				container.Linker = extcap.NewFileSystemLinker(true, container.ErrOut)
			}
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default is $HOME/.config/extcapdev/config.yaml)")
	rootCmd.PersistentFlags().String("extcap-dir", "", "Wireshark personal extcap directory")
	rootCmd.PersistentFlags().String("name", "", fmt.Sprintf("Plugin binary name (default %q)", domain.DefaultPluginName))

	rootCmd.AddCommand(NewInstallCommand(container))
	rootCmd.AddCommand(NewUninstallCommand(container))
	rootCmd.AddCommand(NewStatusCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary.
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and maps errors to exit codes: a declined
// overwrite exits 1 with no diagnostics beyond the earlier notice, any
// other error is printed and exits 1.
func Execute(container *Container) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, domain.ErrDeclined) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
