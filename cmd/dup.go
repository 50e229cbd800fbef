package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/cmd/config"
	"github.com/plctools/keptree/pkg/hierarchy"
	"github.com/plctools/keptree/pkg/service"
)

func NewDupCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dup [path]",
		Short:   "Duplicate a folder and its contents",
		Aliases: []string{"duplicate"},
		Long: `Deep-copy the folder at the given path, inserting the copy as a sibling
right after the original. The copy gets the first free "name (n)" so it
never collides with an existing sibling. Only non-root folders can be
duplicated.

Examples:
  keptree dup Line1                    # Creates "Line1 (1)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			return s.Update(config.Document(s), func(h *hierarchy.Hierarchy) error {
				node, err := s.Resolve(h, args[0])
				if err != nil {
					return err
				}
				clone, err := h.Duplicate(node.ID)
				if err != nil {
					return err
				}
				fmt.Printf("Duplicated %q as %q\n", node.Name, clone.Name)
				return nil
			})
		},
	}

	return cmd
}
