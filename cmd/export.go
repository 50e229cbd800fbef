package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/cmd/config"
	"github.com/plctools/keptree/pkg/export"
	"github.com/plctools/keptree/pkg/service"
)

func NewExportCmd(svc **service.Service) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the hierarchy as a Kepware tag CSV",
		Long: `Flatten the hierarchy into dotted tag names, allocate device addresses
per data type, and write the result as a CSV file the Kepware tag import
accepts. An empty hierarchy (no tags anywhere) is an error and produces
no file.

Examples:
  keptree export                       # Writes kepware_tags.csv
  keptree export -o line1_tags.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			h, err := s.LoadDocument(config.Document(s))
			if err != nil {
				return err
			}

			out := outFile
			if out == "" {
				out = s.Config.ExportFile
			}

			count, err := s.Export(h, out)
			if err != nil {
				if errors.Is(err, export.ErrNoTags) {
					return fmt.Errorf("nothing to export: the hierarchy contains no tags")
				}
				return err
			}

			fmt.Printf("Exported %d tags to %s\n", count, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "", "CSV output file (default from config)")

	return cmd
}
