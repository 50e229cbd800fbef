package cmd

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/cmd/config"
	"github.com/plctools/keptree/pkg/hierarchy"
	"github.com/plctools/keptree/pkg/service"
)

func NewMkdirCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkdir [path]",
		Short: "Add a folder to the hierarchy",
		Long: `Add a folder at the given slash-separated path. The last path segment
is the new folder's name; everything before it must already exist. When
the parent path points at a tag, the folder is created next to that tag
instead.

Examples:
  keptree mkdir Line1                  # Folder under the root
  keptree mkdir Line1/Station2         # Nested folder`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			parentPath, name := path.Split(args[0])
			return s.Update(config.Document(s), func(h *hierarchy.Hierarchy) error {
				parent, err := s.ResolveFolder(h, parentPath)
				if err != nil {
					return err
				}
				folder, err := h.AddFolder(parent.ID, name)
				if err != nil {
					return err
				}
				fmt.Printf("Added folder %q under %q\n", folder.Name, parent.Name)
				return nil
			})
		},
	}

	return cmd
}
