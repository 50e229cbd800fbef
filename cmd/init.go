package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/plctools/keptree/pkg/models"
)

// fileConfig mirrors the settings read by cmd/config; init writes it out
// as a starting point for manual editing.
type fileConfig struct {
	DataDir    string `yaml:"data_dir"`
	Document   string `yaml:"document"`
	ExportFile string `yaml:"export_file"`
}

func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a default configuration file to $HOME/.config/keptree/config.yaml.

Examples:
  keptree init
  keptree init --force                 # Overwrite an existing config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("locate home directory: %w", err)
			}

			configDir := filepath.Join(home, ".config", "keptree")
			configPath := filepath.Join(configDir, "config.yaml")

			if !force {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("config already exists: %s (use --force to overwrite)", configPath)
				}
			}

			if err := os.MkdirAll(configDir, 0755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			cfg := fileConfig{
				DataDir:    filepath.Join(home, ".local", "share", "keptree"),
				Document:   models.DefaultDocumentFile,
				ExportFile: models.DefaultExportFile,
			}
			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			if err := os.WriteFile(configPath, data, 0644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			fmt.Printf("Wrote %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
