package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/cmd/config"
	"github.com/plctools/keptree/pkg/hierarchy"
	"github.com/plctools/keptree/pkg/service"
)

func NewMoveCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [path] [new-parent]",
		Short: "Move a folder or tag under another folder",
		Long: `Move the node at the given path so it becomes the last child of the
destination folder. When the destination path points at a tag, the node
is moved next to that tag. Moving a folder into itself or into one of
its own subfolders is rejected.

Examples:
  keptree move Line1/Speed Line2       # Re-parent a tag
  keptree move Line2 /                 # Move a folder back to the root`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			return s.Update(config.Document(s), func(h *hierarchy.Hierarchy) error {
				node, err := s.Resolve(h, args[0])
				if err != nil {
					return err
				}
				dest, err := s.ResolveFolder(h, args[1])
				if err != nil {
					return err
				}
				if err := h.Move(node.ID, dest.ID); err != nil {
					return err
				}
				fmt.Printf("Moved %q under %q\n", node.Name, dest.Name)
				return nil
			})
		},
	}

	return cmd
}
