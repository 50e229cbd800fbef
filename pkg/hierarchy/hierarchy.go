// Package hierarchy implements the folder/tag tree behind keptree: an
// arena of nodes indexed by stable ids, with the structural operations the
// CLI exposes (add, rename, move, duplicate, remove) and the flattening and
// JSON codec used for export and persistence.
package hierarchy

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/plctools/keptree/pkg/models"
)

// nameFolder performs Unicode case folding so sibling-name comparisons are
// case-insensitive in the same way across every operation.
var nameFolder = cases.Fold()

func foldName(s string) string {
	return nameFolder.String(s)
}

// Hierarchy owns a tree of nodes rooted at a single folder. The root is
// created with the hierarchy, is always a folder, and can never be removed,
// moved or duplicated.
type Hierarchy struct {
	nodes  map[NodeID]*Node
	rootID NodeID
}

// New creates a hierarchy with an empty root folder named "Root".
func New() *Hierarchy {
	return NewWithRoot(models.DefaultRootName)
}

// NewWithRoot creates a hierarchy whose root folder carries the given name.
// A blank name falls back to the default.
func NewWithRoot(name string) *Hierarchy {
	name = strings.TrimSpace(name)
	if name == "" {
		name = models.DefaultRootName
	}
	root := &Node{
		ID:   newNodeID(),
		Name: name,
		Kind: models.KindFolder,
	}
	return &Hierarchy{
		nodes:  map[NodeID]*Node{root.ID: root},
		rootID: root.ID,
	}
}

// Root returns the root folder node.
func (h *Hierarchy) Root() *Node {
	return h.nodes[h.rootID]
}

// Get looks up a node by id.
func (h *Hierarchy) Get(id NodeID) (*Node, bool) {
	n, ok := h.nodes[id]
	return n, ok
}

// ChildNodes returns the resolved children of a node, in insertion order.
func (h *Hierarchy) ChildNodes(id NodeID) []*Node {
	n, ok := h.nodes[id]
	if !ok {
		return nil
	}
	children := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		children = append(children, h.nodes[cid])
	}
	return children
}

// Len returns the total number of nodes, root included.
func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

// TagCount returns the number of tag nodes in the tree.
func (h *Hierarchy) TagCount() int {
	count := 0
	for _, n := range h.nodes {
		if n.IsTag() {
			count++
		}
	}
	return count
}

// FolderCount returns the number of folder nodes, root excluded.
func (h *Hierarchy) FolderCount() int {
	count := 0
	for _, n := range h.nodes {
		if n.IsFolder() && !n.IsRoot() {
			count++
		}
	}
	return count
}

// AddFolder creates a new empty folder as the last child of parent.
// Duplicate sibling names are tolerated here; only Duplicate generates
// disambiguated names.
func (h *Hierarchy) AddFolder(parentID NodeID, name string) (*Node, error) {
	return h.addChild(parentID, name, models.KindFolder, "")
}

// AddTag creates a new tag of the given data type as the last child of
// parent.
func (h *Hierarchy) AddTag(parentID NodeID, name string, dataType models.DataType) (*Node, error) {
	if !dataType.IsValid() {
		return nil, fmt.Errorf("add tag: unknown data type %q", dataType)
	}
	return h.addChild(parentID, name, models.KindTag, dataType)
}

func (h *Hierarchy) addChild(parentID NodeID, name string, kind models.Kind, dataType models.DataType) (*Node, error) {
	parent, ok := h.nodes[parentID]
	if !ok {
		return nil, fmt.Errorf("add %s: %w", kind, ErrNotFound)
	}
	if !parent.IsFolder() {
		return nil, fmt.Errorf("add %s under tag %q: %w", kind, parent.Name, ErrInvalidTarget)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("add %s: %w", kind, ErrBlankName)
	}

	node := &Node{
		ID:       newNodeID(),
		ParentID: parentID,
		Name:     name,
		Kind:     kind,
		DataType: dataType,
	}
	h.nodes[node.ID] = node
	parent.Children = append(parent.Children, node.ID)
	return node, nil
}

// Rename updates a node's display name. Kind and data type are preserved;
// collisions with sibling names are tolerated, matching the add operations.
func (h *Hierarchy) Rename(id NodeID, newName string) error {
	node, ok := h.nodes[id]
	if !ok {
		return fmt.Errorf("rename: %w", ErrNotFound)
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("rename %q: %w", node.Name, ErrBlankName)
	}
	node.Name = newName
	return nil
}

// Remove detaches a node and its whole subtree. The root is never
// removable.
func (h *Hierarchy) Remove(id NodeID) error {
	node, ok := h.nodes[id]
	if !ok {
		return fmt.Errorf("remove: %w", ErrNotFound)
	}
	if node.IsRoot() {
		return fmt.Errorf("remove %q: %w", node.Name, ErrRootImmutable)
	}
	h.detach(node)
	h.deleteSubtree(node.ID)
	return nil
}

// Duplicate deep-copies a non-root folder and inserts the clone as a
// sibling directly after the original, under a generated name: the first
// of "name (1)", "name (2)", ... that no sibling already carries
// (case-insensitive).
func (h *Hierarchy) Duplicate(id NodeID) (*Node, error) {
	node, ok := h.nodes[id]
	if !ok {
		return nil, fmt.Errorf("duplicate: %w", ErrNotFound)
	}
	if !node.IsFolder() {
		return nil, fmt.Errorf("duplicate tag %q: %w", node.Name, ErrInvalidTarget)
	}
	if node.IsRoot() {
		return nil, fmt.Errorf("duplicate %q: %w", node.Name, ErrRootImmutable)
	}

	parent := h.nodes[node.ParentID]
	clone := h.cloneSubtree(node, parent.ID)
	clone.Name = h.uniqueSiblingName(parent, node.Name)

	// Insert right after the original.
	idx := indexOf(parent.Children, node.ID)
	parent.Children = append(parent.Children, "")
	copy(parent.Children[idx+2:], parent.Children[idx+1:])
	parent.Children[idx+1] = clone.ID
	return clone, nil
}

// Move re-parents a node under a new folder, appending it as the last
// child. Moving the root, moving onto a non-folder, dropping a node onto
// itself or onto one of its own descendants are all rejected and leave the
// tree unchanged.
func (h *Hierarchy) Move(id, newParentID NodeID) error {
	node, ok := h.nodes[id]
	if !ok {
		return fmt.Errorf("move: %w", ErrNotFound)
	}
	newParent, ok := h.nodes[newParentID]
	if !ok {
		return fmt.Errorf("move %q: target %w", node.Name, ErrNotFound)
	}
	if node.IsRoot() {
		return fmt.Errorf("move %q: %w", node.Name, ErrRootImmutable)
	}
	if !newParent.IsFolder() {
		return fmt.Errorf("move %q under tag %q: %w", node.Name, newParent.Name, ErrInvalidTarget)
	}
	if newParentID == id || h.isDescendant(newParentID, id) {
		return fmt.Errorf("move %q under %q: %w", node.Name, newParent.Name, ErrCycle)
	}

	h.detach(node)
	node.ParentID = newParentID
	newParent.Children = append(newParent.Children, node.ID)
	return nil
}

// isDescendant reports whether candidate sits somewhere below ancestor,
// walking parent ids from candidate toward the root.
func (h *Hierarchy) isDescendant(candidate, ancestor NodeID) bool {
	n := h.nodes[candidate]
	for n != nil && n.ParentID != "" {
		if n.ParentID == ancestor {
			return true
		}
		n = h.nodes[n.ParentID]
	}
	return false
}

// detach removes the node from its parent's child list. The node keeps its
// subtree; callers re-home or delete it.
func (h *Hierarchy) detach(node *Node) {
	parent, ok := h.nodes[node.ParentID]
	if !ok {
		return
	}
	idx := indexOf(parent.Children, node.ID)
	if idx >= 0 {
		parent.Children = append(parent.Children[:idx], parent.Children[idx+1:]...)
	}
}

func (h *Hierarchy) deleteSubtree(id NodeID) {
	node, ok := h.nodes[id]
	if !ok {
		return
	}
	for _, cid := range node.Children {
		h.deleteSubtree(cid)
	}
	delete(h.nodes, id)
}

// cloneSubtree deep-copies node and all descendants into the arena,
// preserving kind, data type and child order. The clone shares no ids with
// the source.
func (h *Hierarchy) cloneSubtree(node *Node, parentID NodeID) *Node {
	clone := &Node{
		ID:       newNodeID(),
		ParentID: parentID,
		Name:     node.Name,
		Kind:     node.Kind,
		DataType: node.DataType,
	}
	h.nodes[clone.ID] = clone
	for _, cid := range node.Children {
		child := h.cloneSubtree(h.nodes[cid], clone.ID)
		clone.Children = append(clone.Children, child.ID)
	}
	return clone
}

// uniqueSiblingName returns the first "base (n)" candidate, n starting at
// 1, that no child of parent carries under case folding.
func (h *Hierarchy) uniqueSiblingName(parent *Node, base string) string {
	taken := make(map[string]bool, len(parent.Children))
	for _, cid := range parent.Children {
		taken[foldName(h.nodes[cid].Name)] = true
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)", base, n)
		if !taken[foldName(candidate)] {
			return candidate
		}
	}
}

func indexOf(ids []NodeID, id NodeID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
