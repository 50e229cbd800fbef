package hierarchy

import (
	"strings"

	"github.com/plctools/keptree/pkg/models"
)

// Flatten walks the tree depth-first in pre-order and returns one record
// per tag, in encounter order. A tag's full name is the dot-joined path of
// its ancestor folder names followed by its own name; the root's name is
// never part of a path. Folders produce no records.
func (h *Hierarchy) Flatten() []models.TagRecord {
	records := []models.TagRecord{}
	var path []string

	var walk func(n *Node)
	walk = func(n *Node) {
		for _, cid := range n.Children {
			child := h.nodes[cid]
			switch {
			case child.IsTag():
				full := strings.Join(append(path, child.Name), ".")
				records = append(records, models.TagRecord{
					FullName: full,
					DataType: child.DataType,
				})
			case child.IsFolder():
				path = append(path, child.Name)
				walk(child)
				path = path[:len(path)-1]
			}
		}
	}
	walk(h.Root())
	return records
}

// FindByPath resolves a sequence of node names starting below the root,
// matching each segment against child names case-insensitively. An empty
// path resolves to the root. The first child whose folded name matches
// wins, so duplicate sibling names resolve to the earliest sibling.
func (h *Hierarchy) FindByPath(segments []string) (*Node, bool) {
	node := h.Root()
	for _, seg := range segments {
		want := foldName(strings.TrimSpace(seg))
		var next *Node
		for _, cid := range node.Children {
			child := h.nodes[cid]
			if foldName(child.Name) == want {
				next = child
				break
			}
		}
		if next == nil {
			return nil, false
		}
		node = next
	}
	return node, true
}
