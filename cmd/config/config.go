package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plctools/keptree/pkg/models"
	"github.com/plctools/keptree/pkg/service"
)

var (
	cfgFile          string
	DocumentOverride string
	Verbose          bool
)

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "keptree")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("KEPTREE")

	// Set defaults
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "keptree"))
	viper.SetDefault("document", models.DefaultDocumentFile)
	viper.SetDefault("export_file", models.DefaultExportFile)

	if err := viper.ReadInConfig(); err == nil {
		// Do not print this in normal operation, it's noisy.
	}
}

func InitService() (*service.Service, error) {
	config := &service.Config{
		DataDir:    viper.GetString("data_dir"),
		Document:   viper.GetString("document"),
		ExportFile: viper.GetString("export_file"),
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel) // Keep it quiet unless there are issues.
	if Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	svc, err := service.New(config, logger)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

// Document returns the hierarchy document path for this invocation: the
// --file flag when given, otherwise the configured default.
func Document(svc *service.Service) string {
	if DocumentOverride != "" {
		return DocumentOverride
	}
	return svc.Config.Document
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/keptree/config.yaml)")
	cmd.PersistentFlags().StringVarP(&DocumentOverride, "file", "f", "", "Hierarchy document to operate on")
	cmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable debug logging")
}
