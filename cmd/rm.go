package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/cmd/config"
	"github.com/plctools/keptree/pkg/hierarchy"
	"github.com/plctools/keptree/pkg/service"
)

func NewRmCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm [path]",
		Short:   "Remove a folder or tag",
		Aliases: []string{"remove"},
		Long: `Remove the node at the given path together with everything beneath it.
The root folder cannot be removed.

Examples:
  keptree rm Line1/Speed
  keptree rm Line2                     # Removes the whole subtree`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			return s.Update(config.Document(s), func(h *hierarchy.Hierarchy) error {
				node, err := s.Resolve(h, args[0])
				if err != nil {
					return err
				}
				if err := h.Remove(node.ID); err != nil {
					return err
				}
				fmt.Printf("Removed %q\n", node.Name)
				return nil
			})
		},
	}

	return cmd
}
