package hierarchy

import (
	"encoding/json"
	"fmt"

	"github.com/plctools/keptree/pkg/models"
)

// nodeDocument is the persisted shape of one node. The document is a single
// recursive object whose top level is the root folder. Node ids are not
// persisted; a load generates fresh ones.
type nodeDocument struct {
	Name     *string         `json:"name"`
	IsFolder *bool           `json:"isFolder"`
	DataType models.DataType `json:"dataType"`
	Children []nodeDocument  `json:"children"`
}

// Encode serializes the hierarchy to pretty-printed JSON.
func Encode(h *Hierarchy) ([]byte, error) {
	doc := h.encodeNode(h.Root())
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode hierarchy: %w", err)
	}
	return data, nil
}

func (h *Hierarchy) encodeNode(n *Node) nodeDocument {
	isFolder := n.IsFolder()
	dataType := n.DataType
	if isFolder {
		// Folders carry a placeholder type; readers ignore it.
		dataType = models.TypeString
	}
	doc := nodeDocument{
		Name:     &n.Name,
		IsFolder: &isFolder,
		DataType: dataType,
		Children: []nodeDocument{},
	}
	for _, cid := range n.Children {
		doc.Children = append(doc.Children, h.encodeNode(h.nodes[cid]))
	}
	return doc
}

// Decode builds a new hierarchy from a JSON document. Decoding is
// all-or-nothing: any malformed JSON, missing field or invalid tag type
// returns an error wrapping ErrLoad and no hierarchy. Children listed under
// a tag node are dropped; tags are leaves.
func Decode(data []byte) (*Hierarchy, error) {
	var doc nodeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}
	if !*doc.IsFolder {
		return nil, fmt.Errorf("%w: top-level node must be a folder", ErrLoad)
	}

	h := NewWithRoot(*doc.Name)
	if err := h.decodeChildren(h.rootID, doc.Children); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Hierarchy) decodeChildren(parentID NodeID, docs []nodeDocument) error {
	for _, doc := range docs {
		if *doc.IsFolder {
			folder, err := h.AddFolder(parentID, *doc.Name)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrLoad, err)
			}
			if err := h.decodeChildren(folder.ID, doc.Children); err != nil {
				return err
			}
			continue
		}
		// Children under a tag node are silently discarded.
		if _, err := h.AddTag(parentID, *doc.Name, doc.DataType); err != nil {
			return fmt.Errorf("%w: %v", ErrLoad, err)
		}
	}
	return nil
}

// validateDocument checks the whole document before any node is built so a
// bad subtree cannot leave a half-loaded hierarchy behind.
func validateDocument(doc *nodeDocument) error {
	if doc.Name == nil {
		return fmt.Errorf("%w: node is missing the name field", ErrLoad)
	}
	if doc.IsFolder == nil {
		return fmt.Errorf("%w: node %q is missing the isFolder field", ErrLoad, *doc.Name)
	}
	if !*doc.IsFolder && !doc.DataType.IsValid() {
		return fmt.Errorf("%w: tag %q has invalid data type %q", ErrLoad, *doc.Name, doc.DataType)
	}
	if *doc.IsFolder {
		for i := range doc.Children {
			if err := validateDocument(&doc.Children[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
