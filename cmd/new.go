package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/cmd/config"
	"github.com/plctools/keptree/pkg/models"
	"github.com/plctools/keptree/pkg/service"
)

func NewNewCmd(svc **service.Service) *cobra.Command {
	var (
		rootName string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new hierarchy document",
		Long: `Create a new hierarchy document containing only an empty root folder.

Examples:
  keptree new                          # Create kepware_hierarchy.json
  keptree new -f plant.json            # Create a named document
  keptree new --root "Plant A"         # Name the root folder
  keptree new -f plant.json --force    # Overwrite an existing document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			docPath := config.Document(s)
			h, err := s.CreateDocument(docPath, rootName, force)
			if err != nil {
				return err
			}

			fmt.Printf("Created %s (root folder %q)\n", docPath, h.Root().Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&rootName, "root", models.DefaultRootName, "Name of the root folder")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing document")

	return cmd
}
