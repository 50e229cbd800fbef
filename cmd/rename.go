package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/cmd/config"
	"github.com/plctools/keptree/pkg/hierarchy"
	"github.com/plctools/keptree/pkg/service"
)

func NewRenameCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [path] [new-name]",
		Short: "Rename a folder or tag",
		Long: `Rename the node at the given path. Kind and data type are preserved;
only the display name changes.

Examples:
  keptree rename Line1 "Line 1"
  keptree rename Line1/Speed BeltSpeed`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			return s.Update(config.Document(s), func(h *hierarchy.Hierarchy) error {
				node, err := s.Resolve(h, args[0])
				if err != nil {
					return err
				}
				oldName := node.Name
				if err := h.Rename(node.ID, args[1]); err != nil {
					return err
				}
				fmt.Printf("Renamed %q to %q\n", oldName, node.Name)
				return nil
			})
		},
	}

	return cmd
}
