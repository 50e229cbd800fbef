package cmd

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/cmd/config"
	"github.com/plctools/keptree/pkg/hierarchy"
	"github.com/plctools/keptree/pkg/models"
	"github.com/plctools/keptree/pkg/service"
)

func NewAddCmd(svc **service.Service) *cobra.Command {
	var tagType string

	cmd := &cobra.Command{
		Use:   "add [path]",
		Short: "Add a tag to the hierarchy",
		Long: `Add a tag at the given slash-separated path. The last path segment is
the tag's name; everything before it must be an existing folder (a tag
parent is repaired to its containing folder).

Examples:
  keptree add Line1/Speed -t integer
  keptree add Line1/Running -t boolean
  keptree add Line1/PartID -t string`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			dataType, err := models.ParseDataType(tagType)
			if err != nil {
				return err
			}

			parentPath, name := path.Split(args[0])
			return s.Update(config.Document(s), func(h *hierarchy.Hierarchy) error {
				parent, err := s.ResolveFolder(h, parentPath)
				if err != nil {
					return err
				}
				tag, err := h.AddTag(parent.ID, name, dataType)
				if err != nil {
					return err
				}
				fmt.Printf("Added %s tag %q under %q\n", tag.DataType, tag.Name, parent.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&tagType, "type", "t", string(models.TypeString), "Tag data type (string, integer, boolean)")

	return cmd
}
