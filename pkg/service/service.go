// Package service is the seam between the CLI and the core: it owns file
// I/O for hierarchy documents and CSV exports, resolves user-supplied node
// paths, and keeps the recent-documents registry up to date.
package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/plctools/keptree/pkg/export"
	"github.com/plctools/keptree/pkg/hierarchy"
	"github.com/plctools/keptree/pkg/registry"
)

// ErrNodeNotFound is returned when a user-supplied path does not resolve
// to a node in the document.
var ErrNodeNotFound = errors.New("no node at this path")

// Config holds service configuration
type Config struct {
	// DataDir is where the document registry database lives.
	DataDir string
	// Document is the default hierarchy document path.
	Document string
	// ExportFile is the default CSV output path.
	ExportFile string
}

// Service is the core document service
type Service struct {
	Config   *Config
	Registry *registry.Registry
	log      *logrus.Logger
}

// New creates a new document service. The registry is optional: when the
// data dir cannot be prepared the service still works, it just stops
// tracking recent documents.
func New(config *Config, log *logrus.Logger) (*Service, error) {
	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.WarnLevel)
	}

	var reg *registry.Registry
	if config.DataDir != "" {
		var err error
		reg, err = registry.NewRegistry(config.DataDir)
		if err != nil {
			log.WithError(err).Warn("document registry unavailable, recent-document tracking disabled")
			reg = nil
		}
	}

	return &Service{
		Config:   config,
		Registry: reg,
		log:      log,
	}, nil
}

// Close releases the registry database.
func (s *Service) Close() error {
	if s.Registry != nil {
		return s.Registry.Close()
	}
	return nil
}

// CreateDocument writes a new document containing only an empty root
// folder. It refuses to overwrite an existing file unless force is set.
func (s *Service) CreateDocument(path, rootName string, force bool) (*hierarchy.Hierarchy, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("document already exists: %s (use --force to overwrite)", path)
		}
	}
	h := hierarchy.NewWithRoot(rootName)
	if err := s.SaveDocument(path, h); err != nil {
		return nil, err
	}
	return h, nil
}

// LoadDocument reads and decodes a hierarchy document. A decode failure
// returns an error wrapping hierarchy.ErrLoad and no hierarchy, so the
// caller's current state is never replaced by a half-read document.
func (s *Service) LoadDocument(path string) (*hierarchy.Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	h, err := hierarchy.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s.touch(path, h)
	return h, nil
}

// SaveDocument encodes the hierarchy and writes it to path, creating
// parent directories as needed.
func (s *Service) SaveDocument(path string, h *hierarchy.Hierarchy) error {
	data, err := hierarchy.Encode(h)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create document directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	s.touch(path, h)
	return nil
}

// Update loads the document at path, applies fn, and saves the result.
// When fn fails nothing is written back.
func (s *Service) Update(path string, fn func(*hierarchy.Hierarchy) error) error {
	h, err := s.LoadDocument(path)
	if err != nil {
		return err
	}
	if err := fn(h); err != nil {
		return err
	}
	return s.SaveDocument(path, h)
}

// Export flattens the hierarchy, allocates addresses and writes the CSV to
// outPath, returning the number of exported tags. A hierarchy without tags
// returns export.ErrNoTags and no file is created.
func (s *Service) Export(h *hierarchy.Hierarchy, outPath string) (int, error) {
	records := h.Flatten()
	text, err := export.RenderCSV(records)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
		return 0, fmt.Errorf("write csv: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"file": outPath,
		"tags": len(records),
	}).Debug("exported tag csv")
	return len(records), nil
}

// Resolve turns a slash-separated node path like "Line1/Speed" into a
// node. Empty, "/" and "." resolve to the root. Matching is
// case-insensitive per segment.
func (s *Service) Resolve(h *hierarchy.Hierarchy, path string) (*hierarchy.Node, error) {
	segments := SplitPath(path)
	node, ok := h.FindByPath(segments)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, path)
	}
	return node, nil
}

// ResolveFolder resolves a path like Resolve but repairs a tag target to
// its parent folder, the way a tree view resolves "selected container"
// when the selection is a tag.
func (s *Service) ResolveFolder(h *hierarchy.Hierarchy, path string) (*hierarchy.Node, error) {
	node, err := s.Resolve(h, path)
	if err != nil {
		return nil, err
	}
	if node.IsTag() {
		parent, ok := h.Get(node.ParentID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, path)
		}
		return parent, nil
	}
	return node, nil
}

// SplitPath breaks a slash-separated node path into trimmed segments,
// dropping empties so leading and trailing slashes are harmless.
func SplitPath(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" || path == "." {
		return nil
	}
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// touch records document usage in the registry, when one is available.
func (s *Service) touch(path string, h *hierarchy.Hierarchy) {
	if s.Registry == nil {
		return
	}
	if err := s.Registry.Touch(path, h.Root().Name, h.FolderCount(), h.TagCount()); err != nil {
		s.log.WithError(err).Warn("failed to update document registry")
	}
}
