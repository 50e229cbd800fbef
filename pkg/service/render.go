package service

import (
	"fmt"
	"strings"

	"github.com/plctools/keptree/pkg/hierarchy"
)

// RenderTree prints the hierarchy as an indented tree, one node per line.
// Tags show their data type after the name.
func RenderTree(h *hierarchy.Hierarchy) string {
	var sb strings.Builder
	root := h.Root()
	sb.WriteString(root.Name)
	sb.WriteString("\n")
	renderChildren(&sb, h, root, "")
	return sb.String()
}

func renderChildren(sb *strings.Builder, h *hierarchy.Hierarchy, node *hierarchy.Node, prefix string) {
	children := h.ChildNodes(node.ID)
	for i, child := range children {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(children)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		if child.IsTag() {
			fmt.Fprintf(sb, "%s%s%s [%s]\n", prefix, connector, child.Name, child.DataType)
			continue
		}
		fmt.Fprintf(sb, "%s%s%s/\n", prefix, connector, child.Name)
		renderChildren(sb, h, child, childPrefix)
	}
}
