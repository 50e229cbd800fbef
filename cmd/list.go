package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/cmd/config"
	"github.com/plctools/keptree/pkg/hierarchy"
	"github.com/plctools/keptree/pkg/service"
)

func NewListCmd(svc **service.Service) *cobra.Command {
	var (
		listJSON bool
		listFlat bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Show the hierarchy",
		Aliases: []string{"ls", "tree"},
		Long: `Show the hierarchy document as a tree.

Examples:
  keptree list                 # Tree view
  keptree list --flat          # Flattened tag list with full names
  keptree list --json          # Dump the raw document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			h, err := s.LoadDocument(config.Document(s))
			if err != nil {
				return err
			}

			if listJSON {
				data, err := hierarchy.Encode(h)
				if err != nil {
					return err
				}
				os.Stdout.Write(data)
				fmt.Println()
				return nil
			}

			if listFlat {
				for _, rec := range h.Flatten() {
					fmt.Printf("%s\t%s\n", rec.FullName, rec.DataType)
				}
				return nil
			}

			fmt.Print(service.RenderTree(h))
			return nil
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output the raw hierarchy document")
	cmd.Flags().BoolVar(&listFlat, "flat", false, "Output the flattened tag list")

	return cmd
}
