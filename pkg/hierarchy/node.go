package hierarchy

import (
	"github.com/google/uuid"

	"github.com/plctools/keptree/pkg/models"
)

// NodeID is the stable identity of a node within one Hierarchy. IDs are
// generated on creation and never reused; they are not persisted, a loaded
// document gets fresh ones.
type NodeID string

func newNodeID() NodeID {
	return NodeID(uuid.NewString())
}

// Node is a single entry in the hierarchy arena. Folders own an ordered
// list of child ids; tags are leaves and carry a data type. Ownership is
// expressed through the id links rather than pointers so a node can never
// end up with two parents.
type Node struct {
	ID       NodeID
	ParentID NodeID // empty for the root
	Name     string
	Kind     models.Kind
	DataType models.DataType // meaningful only when Kind == KindTag
	Children []NodeID
}

// IsFolder reports whether the node can hold children.
func (n *Node) IsFolder() bool {
	return n.Kind == models.KindFolder
}

// IsTag reports whether the node is an exportable leaf.
func (n *Node) IsTag() bool {
	return n.Kind == models.KindTag
}

// IsRoot reports whether the node is the hierarchy root.
func (n *Node) IsRoot() bool {
	return n.ParentID == ""
}
