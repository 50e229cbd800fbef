package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/cmd"
	"github.com/plctools/keptree/cmd/config"
	"github.com/plctools/keptree/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := &cobra.Command{
		Use:           "keptree",
		Short:         "Build folder/tag hierarchies and export them as Kepware tag CSV",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		// This runs once before any subcommand
		config.InitConfig()

		var err error
		svc, err = config.InitService()
		return err
	}
	rootCmd.PersistentPostRun = func(c *cobra.Command, args []string) {
		if svc != nil {
			svc.Close()
		}
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewNewCmd(&svc))
	rootCmd.AddCommand(cmd.NewMkdirCmd(&svc))
	rootCmd.AddCommand(cmd.NewAddCmd(&svc))
	rootCmd.AddCommand(cmd.NewRenameCmd(&svc))
	rootCmd.AddCommand(cmd.NewMoveCmd(&svc))
	rootCmd.AddCommand(cmd.NewDupCmd(&svc))
	rootCmd.AddCommand(cmd.NewRmCmd(&svc))
	rootCmd.AddCommand(cmd.NewListCmd(&svc))
	rootCmd.AddCommand(cmd.NewExportCmd(&svc))
	rootCmd.AddCommand(cmd.NewRecentCmd(&svc))
	rootCmd.AddCommand(cmd.NewInitCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
